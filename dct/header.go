package dct

import (
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Magic identifies a .dct stream
const Magic = "DCT1"

// HeaderSize is magic + width + height + channels
const HeaderSize = 4 + 2 + 2 + 1

// coefficient bytes per block
const blockBytes = 64 * 2

// Header carries the unpadded image geometry
type Header struct {
	Width    uint16
	Height   uint16
	Channels uint8
}

// AppendTo serializes h onto dst
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)
	dst = common.AppendUint16(dst, h.Width)
	dst = common.AppendUint16(dst, h.Height)
	return append(dst, h.Channels)
}

// PayloadSize is the exact coefficient stream length the header declares
func (h Header) PayloadSize() int {
	return blockCount(int(h.Width), int(h.Height)) * blockBytes
}

// ParseHeader reads the fixed header. A stream that is too short to hold
// it, but agrees with Magic as far as it goes, is truncated rather than
// malformed.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	n := min(len(data), len(Magic))
	if string(data[:n]) != Magic[:n] {
		return h, fmt.Errorf("dct: bad magic %q: %w", data[:n], common.ErrFormat)
	}
	if len(data) < HeaderSize {
		return h, fmt.Errorf("dct: header needs %d bytes, got %d: %w", HeaderSize, len(data), common.ErrTruncated)
	}

	h.Width, _ = common.Uint16(data, 4)
	h.Height, _ = common.Uint16(data, 6)
	h.Channels = data[8]

	if h.Width == 0 || h.Height == 0 {
		return h, fmt.Errorf("dct: image %dx%d: %w", h.Width, h.Height, common.ErrFormat)
	}
	if h.Channels != 1 {
		return h, fmt.Errorf("dct: %d channels, only single-channel streams are supported: %w", h.Channels, common.ErrUnsupported)
	}
	return h, nil
}
