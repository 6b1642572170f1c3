package dct

import (
	"github.com/cocosip/go-compengine/codec"
)

const (
	// Extension is appended to compressed file names
	Extension = ".dct"

	// DecodedExtension is appended to the .dct path for the decoded PGM
	DecodedExtension = ".pgm"
)

// Codec implements codec.Codec and codec.FileCompressor for the transform coder
type Codec struct{}

// NewCodec creates a new DCT codec
func NewCodec() *Codec {
	return &Codec{}
}

// Compress decodes an in-memory netpbm/PNG/JPEG/GIF image and encodes it
func (c *Codec) Compress(data []byte) ([]byte, error) {
	img, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return Encode(img)
}

// CompressFile encodes the image at path; this is the only way in for DICOM
func (c *Codec) CompressFile(path string) ([]byte, error) {
	return EncodeFile(path)
}

// Decompress decodes a .dct stream into a binary PGM image
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return img.PGM(), nil
}

// Algorithm returns codec.DCT
func (c *Codec) Algorithm() codec.Algorithm {
	return codec.DCT
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "dct"
}

// Extension returns ".dct"
func (c *Codec) Extension() string {
	return Extension
}

// DecompressedPath appends ".pgm": "scene.ppm.dct" becomes "scene.ppm.dct.pgm"
func (c *Codec) DecompressedPath(compressedPath string) string {
	return compressedPath + DecodedExtension
}

func init() {
	codec.Register(NewCodec())
}
