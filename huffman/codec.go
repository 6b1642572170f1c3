package huffman

import (
	"path/filepath"
	"strings"

	"github.com/cocosip/go-compengine/codec"
)

// Extension is appended to compressed file names.
const Extension = ".huff"

// Codec implements the codec.Codec interface for the Huffman coder
type Codec struct{}

// NewCodec creates a new Huffman codec
func NewCodec() *Codec {
	return &Codec{}
}

// Compress encodes data
func (c *Codec) Compress(data []byte) ([]byte, error) {
	return Encode(data)
}

// Decompress decodes a Huffman stream
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	return Decode(data)
}

// Algorithm returns codec.Huffman
func (c *Codec) Algorithm() codec.Algorithm {
	return codec.Huffman
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "huffman"
}

// Extension returns ".huff"
func (c *Codec) Extension() string {
	return Extension
}

// DecompressedPath strips ".huff" and marks the restored file with "_DC"
// before its original extension: "log.txt.huff" becomes "log_DC.txt".
// Paths without the suffix get "_DC" appended.
func (c *Codec) DecompressedPath(compressedPath string) string {
	base, ok := strings.CutSuffix(compressedPath, Extension)
	if !ok {
		return compressedPath + "_DC"
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return base + "_DC"
	}
	return strings.TrimSuffix(base, ext) + "_DC" + ext
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
