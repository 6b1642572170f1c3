// Package dct implements a lossy 8x8 block-transform image coder.
//
// The encoder reduces the source image to luma, pads it to whole 8x8
// blocks, applies a two-dimensional DCT-II per block and quantizes the
// coefficients with the JPEG luminance table. The .dct stream is
//
//	"DCT1" | width u16 | height u16 | channels u8 (=1) | blocks x 64 x int16
//
// with all integers little-endian, blocks in raster order and coefficients
// row-major within a block. Decoding yields a single-channel image that is
// written out as binary PGM.
//
// Source images are netpbm (P5/P6), uncompressed 8-bit DICOM, or anything
// the standard image package can decode (PNG, JPEG, GIF).
package dct
