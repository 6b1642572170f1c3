package dct

import "math"

// BlockSize is the edge length of a transform block
const BlockSize = 8

// QuantizationMatrix is the standard JPEG luminance table, row-major
var QuantizationMatrix = [64]int32{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// cosTable[x][u] = cos((2x+1)·u·π/16)
var cosTable [BlockSize][BlockSize]float64

// alpha[0] = 1/√2, alpha[k>0] = 1
var alpha [BlockSize]float64

func init() {
	for x := 0; x < BlockSize; x++ {
		for u := 0; u < BlockSize; u++ {
			cosTable[x][u] = math.Cos((float64(2*x+1) * float64(u) * math.Pi) / 16)
		}
	}
	alpha[0] = 1 / math.Sqrt2
	for k := 1; k < BlockSize; k++ {
		alpha[k] = 1
	}
}
