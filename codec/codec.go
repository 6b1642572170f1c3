package codec

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the compression codecs.
type Algorithm uint8

const (
	Huffman Algorithm = iota
	LZSS
	DCT
)

var algorithmNames = [...]string{
	Huffman: "huffman",
	LZSS:    "lzss",
	DCT:     "dct",
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmNames)
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Codec is the interface implemented by every codec package.
// Both directions operate on whole in-memory buffers.
type Codec interface {
	// Compress encodes a complete input buffer
	Compress(data []byte) ([]byte, error)

	// Decompress decodes a complete compressed buffer
	Decompress(data []byte) ([]byte, error)

	// Algorithm returns the selector this codec answers to
	Algorithm() Algorithm

	// Name returns a human-readable name
	Name() string

	// Extension is the suffix appended to compressed files, e.g. ".huff"
	Extension() string
}

// FileCompressor is implemented by codecs whose input format is best read
// from a path (the transform coder hands paths to image decoders).
type FileCompressor interface {
	CompressFile(path string) ([]byte, error)
}

// OutputNamer is implemented by codecs that derive a decompressed file name
// other than stripping Extension.
type OutputNamer interface {
	DecompressedPath(compressedPath string) string
}
