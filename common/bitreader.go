package common

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitReader reads bits MSB-first from a byte slice (the layout produced by
// BitWriter). It never reads past the end of the slice.
type BitReader struct {
	r         *bitio.Reader
	totalBits int
	position  int
}

// NewBitReader creates a reader over data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{
		r:         bitio.NewReader(bytes.NewReader(data)),
		totalBits: len(data) * 8,
	}
}

// Remaining returns the number of unread bits.
func (br *BitReader) Remaining() int {
	return br.totalBits - br.position
}

// Position returns the current bit offset.
func (br *BitReader) Position() int {
	return br.position
}

// ReadBit consumes one bit. It returns ErrEOF when the input is exhausted.
func (br *BitReader) ReadBit() (int, error) {
	if br.position >= br.totalBits {
		return 0, ErrEOF
	}
	b, err := br.r.ReadBool()
	if err != nil {
		return 0, ErrEOF
	}
	br.position++
	if b {
		return 1, nil
	}
	return 0, nil
}
