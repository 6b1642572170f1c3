package dct

import (
	"fmt"
	"strconv"

	"github.com/cocosip/go-compengine/common"
)

// MaxDimension is the largest width or height the header can carry
const MaxDimension = 0xFFFF

// Image is an 8-bit source image with interleaved samples
type Image struct {
	Width    int
	Height   int
	Channels int // 1 (gray) or 3 (RGB)
	Pix      []byte
}

// Validate checks geometry and buffer size
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 || img.Width > MaxDimension || img.Height > MaxDimension {
		return fmt.Errorf("dct: image %dx%d outside 1..%d: %w", img.Width, img.Height, MaxDimension, common.ErrUnsupported)
	}
	if img.Channels != 1 && img.Channels != 3 {
		return fmt.Errorf("dct: %d channels: %w", img.Channels, common.ErrUnsupported)
	}
	if need := img.Width * img.Height * img.Channels; len(img.Pix) < need {
		return fmt.Errorf("dct: pixel buffer has %d bytes, need %d: %w", len(img.Pix), need, common.ErrUnsupported)
	}
	return nil
}

// luma returns one float32 sample per pixel. RGB uses the Rec.601 weights
// 0.299, 0.587, 0.114 without rounding.
func (img *Image) luma() []float32 {
	n := img.Width * img.Height
	out := make([]float32, n)
	if img.Channels == 1 {
		for i := range out {
			out[i] = float32(img.Pix[i])
		}
		return out
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+3 {
		r := float32(img.Pix[p])
		g := float32(img.Pix[p+1])
		b := float32(img.Pix[p+2])
		out[i] = 0.299*r + 0.587*g + 0.114*b
	}
	return out
}

// Gray is a decoded single-channel image
type Gray struct {
	Width  int
	Height int
	Pix    []byte
}

// At returns the pixel at (x, y)
func (g *Gray) At(x, y int) byte {
	return g.Pix[y*g.Width+x]
}

// PGM serializes g as binary PGM: "P5\n<w> <h>\n255\n" followed by the pixels
func (g *Gray) PGM() []byte {
	out := make([]byte, 0, len(g.Pix)+20)
	out = append(out, "P5\n"...)
	out = strconv.AppendInt(out, int64(g.Width), 10)
	out = append(out, ' ')
	out = strconv.AppendInt(out, int64(g.Height), 10)
	out = append(out, "\n255\n"...)
	return append(out, g.Pix...)
}

// paddedSize rounds n up to a whole number of blocks
func paddedSize(n int) int {
	return (n + BlockSize - 1) / BlockSize * BlockSize
}

// blockCount is the number of 8x8 blocks covering a width x height image
func blockCount(width, height int) int {
	return (paddedSize(width) / BlockSize) * (paddedSize(height) / BlockSize)
}
