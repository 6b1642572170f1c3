package dct

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
)

// stdImageSource decodes whatever the standard image registry knows
type stdImageSource struct{}

func (stdImageSource) Name() string { return "image" }

func (stdImageSource) Match(head []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(head))
	return err == nil
}

func (s stdImageSource) Decode(_ string, data []byte) (*Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, sourceError(s, "decode: %v", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := src.(*image.Gray); ok {
		pix := make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := g.PixOffset(b.Min.X, y)
			pix = append(pix, g.Pix[off:off+w]...)
		}
		return &Image{Width: w, Height: h, Channels: 1, Pix: pix}, nil
	}

	pix := make([]byte, 0, w*h*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return &Image{Width: w, Height: h, Channels: 3, Pix: pix}, nil
}
