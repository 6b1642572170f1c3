package huffman

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Decode reverses Encode using only the header histogram and the payload.
func Decode(data []byte) ([]byte, error) {
	hdr, off, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.OriginalSize == 0 {
		return []byte{}, nil
	}

	tree := BuildTree(hdr.FrequencyTable())
	payload := data[off:]

	// every symbol costs at least one bit
	capacity := uint64(hdr.OriginalSize)
	if limit := uint64(len(payload)) * 8; capacity > limit {
		capacity = limit
	}
	out := make([]byte, 0, capacity)

	r := common.NewBitReader(payload)
	for uint32(len(out)) < hdr.OriginalSize {
		sym, err := tree.decodeSymbol(r)
		if err != nil {
			if errors.Is(err, common.ErrTruncated) {
				return nil, fmt.Errorf("huffman: payload ended after %d of %d symbols: %w",
					len(out), hdr.OriginalSize, common.ErrTruncated)
			}
			return nil, err
		}
		out = append(out, sym)
	}

	return out, nil
}
