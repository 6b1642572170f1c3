package huffman

import (
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Magic identifies a Huffman stream.
const Magic = "HUF1"

const (
	fixedHeaderSize = 4 + 4 + 2
	symbolEntrySize = 1 + 4
)

// SymbolFreq is one histogram entry of the header.
type SymbolFreq struct {
	Symbol byte
	Freq   uint32
}

// Header is the persisted part of a compressed stream.
type Header struct {
	OriginalSize uint32
	Symbols      []SymbolFreq
}

// Size returns the encoded header length in bytes.
func (h *Header) Size() int {
	return fixedHeaderSize + len(h.Symbols)*symbolEntrySize
}

// newHeader lists the non-zero entries of ft in ascending symbol order.
func newHeader(originalSize uint32, ft *FrequencyTable) *Header {
	h := &Header{OriginalSize: originalSize, Symbols: make([]SymbolFreq, 0, ft.Distinct())}
	for sym, f := range ft {
		if f > 0 {
			h.Symbols = append(h.Symbols, SymbolFreq{Symbol: byte(sym), Freq: uint32(f)})
		}
	}
	return h
}

// AppendTo serializes h onto dst.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = common.AppendUint32(dst, h.OriginalSize)
	dst = common.AppendUint16(dst, uint16(len(h.Symbols)))
	for _, s := range h.Symbols {
		dst = append(dst, s.Symbol)
		dst = common.AppendUint32(dst, s.Freq)
	}
	return dst
}

// FrequencyTable rebuilds the histogram the header was written from.
func (h *Header) FrequencyTable() *FrequencyTable {
	var ft FrequencyTable
	for _, s := range h.Symbols {
		ft[s.Symbol] = uint64(s.Freq)
	}
	return &ft
}

// ParseHeader reads and validates a header, returning it together with the
// offset of the payload.
func ParseHeader(data []byte) (*Header, int, error) {
	// a prefix of a valid header is truncated, not malformed
	n := min(len(data), len(Magic))
	if string(data[:n]) != Magic[:n] {
		return nil, 0, fmt.Errorf("huffman: bad magic %q: %w", data[:n], common.ErrFormat)
	}
	if len(data) < fixedHeaderSize {
		return nil, 0, fmt.Errorf("huffman: %d byte header: %w", len(data), common.ErrTruncated)
	}

	size, _ := common.Uint32(data, 4)
	count, _ := common.Uint16(data, 8)
	if count > 256 {
		return nil, 0, fmt.Errorf("huffman: %d symbols: %w", count, common.ErrFormat)
	}

	end := fixedHeaderSize + int(count)*symbolEntrySize
	if len(data) < end {
		return nil, 0, fmt.Errorf("huffman: histogram of %d symbols cut at %d bytes: %w",
			count, len(data), common.ErrTruncated)
	}

	h := &Header{OriginalSize: size, Symbols: make([]SymbolFreq, count)}
	var seen [256]bool
	var total uint64
	off := fixedHeaderSize
	for i := range h.Symbols {
		sym := data[off]
		freq, _ := common.Uint32(data, off+1)
		off += symbolEntrySize

		if seen[sym] {
			return nil, 0, fmt.Errorf("huffman: duplicate symbol 0x%02x: %w", sym, common.ErrFormat)
		}
		if freq == 0 {
			return nil, 0, fmt.Errorf("huffman: zero frequency for symbol 0x%02x: %w", sym, common.ErrFormat)
		}
		seen[sym] = true
		total += uint64(freq)
		h.Symbols[i] = SymbolFreq{Symbol: sym, Freq: freq}
	}

	if size > 0 {
		if count == 0 {
			return nil, 0, fmt.Errorf("huffman: %d bytes declared with empty histogram: %w", size, common.ErrFormat)
		}
		if total != uint64(size) {
			return nil, 0, fmt.Errorf("huffman: histogram sums to %d, header declares %d: %w",
				total, size, common.ErrFormat)
		}
	}

	return h, end, nil
}
