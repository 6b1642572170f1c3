package common

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitWriter packs bits into bytes, MSB-first.
//
// The first bit written goes to bit position 7 of the first byte. Bytes
// aligns the stream, padding the partial final byte with zero bits.
type BitWriter struct {
	buf   *bytes.Buffer
	w     *bitio.Writer
	total int
}

// NewBitWriter creates a writer with room for sizeHint bytes.
func NewBitWriter(sizeHint int) *BitWriter {
	if sizeHint < 0 {
		sizeHint = 0
	}
	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	return &BitWriter{buf: buf, w: bitio.NewWriter(buf)}
}

// WriteBit appends a single bit. Any non-zero value is a 1.
func (w *BitWriter) WriteBit(bit int) {
	w.w.TryWriteBool(bit != 0)
	w.total++
}

// WriteBits appends the low n bits of value, most significant first.
func (w *BitWriter) WriteBits(value uint64, n int) {
	if n <= 0 {
		return
	}
	if n > 64 {
		n = 64
	}
	if n < 64 {
		value &= 1<<uint(n) - 1
	}
	w.w.TryWriteBits(value, uint8(n))
	w.total += n
}

// NumBits returns the number of bits written so far, padding excluded.
func (w *BitWriter) NumBits() int {
	return w.total
}

// Bytes returns the packed output. A trailing partial byte is padded
// with zeros; bits written afterwards start on the next byte.
func (w *BitWriter) Bytes() []byte {
	w.w.TryAlign()
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out
}
