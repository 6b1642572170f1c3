package huffman

import (
	"fmt"
	"math"

	"github.com/cocosip/go-compengine/common"
)

// Encode compresses data into a header followed by the packed codes.
// An empty input produces a header with no symbols and no payload.
func Encode(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("huffman: %d byte input: %w", len(data), common.ErrUnsupported)
	}

	ft := NewFrequencyTable(data)
	hdr := newHeader(uint32(len(data)), ft)
	out := hdr.AppendTo(make([]byte, 0, hdr.Size()+len(data)/2))
	if len(data) == 0 {
		return out, nil
	}

	tree := BuildTree(ft)
	codes, err := tree.Codes()
	if err != nil {
		return nil, err
	}

	w := common.NewBitWriter(len(data) / 2)
	for _, b := range data {
		c := codes[b]
		w.WriteBits(c.Bits, int(c.Len))
	}

	return append(out, w.Bytes()...), nil
}
