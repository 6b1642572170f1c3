package dct

// Encode compresses img into a .dct stream. The header records the
// unpadded size; the padding samples are zero.
func Encode(img *Image) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	w, h := img.Width, img.Height
	pw, ph := paddedSize(w), paddedSize(h)

	padded := make([]float32, pw*ph)
	luma := img.luma()
	for y := 0; y < h; y++ {
		copy(padded[y*pw:y*pw+w], luma[y*w:(y+1)*w])
	}

	hdr := Header{Width: uint16(w), Height: uint16(h), Channels: 1}
	out := make([]byte, 0, HeaderSize+hdr.PayloadSize())
	out = hdr.AppendTo(out)

	var (
		block [64]float32
		coef  [64]float32
		q     [64]int16
	)
	for by := 0; by < ph; by += BlockSize {
		for bx := 0; bx < pw; bx += BlockSize {
			for y := 0; y < BlockSize; y++ {
				row := (by+y)*pw + bx
				copy(block[y*BlockSize:(y+1)*BlockSize], padded[row:row+BlockSize])
			}
			forwardDCT(&block, &coef)
			quantize(&coef, &q)
			for _, c := range q {
				out = append(out, byte(uint16(c)), byte(uint16(c)>>8))
			}
		}
	}

	return out, nil
}

// EncodeFile reads the image at path through the source chain and encodes it
func EncodeFile(path string) ([]byte, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	return Encode(img)
}
