package dct

import "math"

// forwardDCT transforms one block of level-unshifted samples. out[v*8+u]
// holds the coefficient for horizontal frequency u and vertical frequency v.
// Samples and coefficients are float32 while sums run in float64, which
// keeps the quantized output identical to existing .dct files.
func forwardDCT(in, out *[64]float32) {
	for v := 0; v < BlockSize; v++ {
		for u := 0; u < BlockSize; u++ {
			var sum float64
			for y := 0; y < BlockSize; y++ {
				for x := 0; x < BlockSize; x++ {
					f := float64(in[y*BlockSize+x]) - 128
					sum += f * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[v*BlockSize+u] = float32(0.25 * alpha[u] * alpha[v] * sum)
		}
	}
}

// inverseDCT reverses forwardDCT, including the +128 level shift. The
// result is not clamped.
func inverseDCT(in, out *[64]float64) {
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			var sum float64
			for v := 0; v < BlockSize; v++ {
				for u := 0; u < BlockSize; u++ {
					sum += alpha[u] * alpha[v] * in[v*BlockSize+u] * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[y*BlockSize+x] = 0.25*sum + 128
		}
	}
}

// quantize divides by the matrix, rounds half away from zero and clamps to int16
func quantize(in *[64]float32, out *[64]int16) {
	for i, c := range in {
		q := math.Round(float64(c / float32(QuantizationMatrix[i])))
		switch {
		case q > math.MaxInt16:
			q = math.MaxInt16
		case q < math.MinInt16:
			q = math.MinInt16
		}
		out[i] = int16(q)
	}
}

func dequantize(in *[64]int16, out *[64]float64) {
	for i, c := range in {
		out[i] = float64(c) * float64(QuantizationMatrix[i])
	}
}

// toPixel clamps to [0,255] and rounds
func toPixel(f float64) byte {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return byte(math.Round(f))
}
