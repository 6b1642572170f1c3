package dct

import (
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Decode reconstructs the grayscale image of a .dct stream. The stream must
// hold exactly the blocks its header declares.
func Decode(data []byte) (*Gray, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	need := hdr.PayloadSize()
	switch {
	case len(payload) < need:
		return nil, fmt.Errorf("dct: %d coefficient bytes, %dx%d needs %d: %w",
			len(payload), hdr.Width, hdr.Height, need, common.ErrTruncated)
	case len(payload) > need:
		return nil, fmt.Errorf("dct: %d bytes after the last block: %w", len(payload)-need, common.ErrFormat)
	}

	w, h := int(hdr.Width), int(hdr.Height)
	pw, ph := paddedSize(w), paddedSize(h)
	padded := make([]byte, pw*ph)

	var (
		q     [64]int16
		coef  [64]float64
		block [64]float64
	)
	off := 0
	for by := 0; by < ph; by += BlockSize {
		for bx := 0; bx < pw; bx += BlockSize {
			for i := range q {
				v, _ := common.Uint16(payload, off)
				q[i] = int16(v)
				off += 2
			}
			dequantize(&q, &coef)
			inverseDCT(&coef, &block)
			for y := 0; y < BlockSize; y++ {
				row := (by+y)*pw + bx
				for x := 0; x < BlockSize; x++ {
					padded[row+x] = toPixel(block[y*BlockSize+x])
				}
			}
		}
	}

	img := &Gray{Width: w, Height: h, Pix: make([]byte, w*h)}
	for y := 0; y < h; y++ {
		copy(img.Pix[y*w:(y+1)*w], padded[y*pw:y*pw+w])
	}
	return img, nil
}
