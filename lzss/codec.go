package lzss

import (
	"strings"

	"github.com/cocosip/go-compengine/codec"
)

const (
	// Extension is appended to compressed file names
	Extension = ".lzss"

	// FallbackExtension is appended when a decompressed input lacks Extension
	FallbackExtension = ".orig"
)

// Codec implements the codec.Codec interface for LZSS
type Codec struct {
	params Params
}

// NewCodec creates an LZSS codec with default parameters
func NewCodec() *Codec {
	return &Codec{params: DefaultParams()}
}

// NewCodecWithParams creates an LZSS codec with custom search parameters
func NewCodecWithParams(p Params) (*Codec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Codec{params: p}, nil
}

// Params returns the codec's search parameters
func (c *Codec) Params() Params {
	return c.params
}

// Compress encodes data
func (c *Codec) Compress(data []byte) ([]byte, error) {
	return EncodeWithParams(data, c.params)
}

// Decompress decodes a token stream; the format does not depend on the
// encoder's parameters
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	return Decode(data)
}

// Algorithm returns codec.LZSS
func (c *Codec) Algorithm() codec.Algorithm {
	return codec.LZSS
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "lzss"
}

// Extension returns ".lzss"
func (c *Codec) Extension() string {
	return Extension
}

// DecompressedPath strips ".lzss", or appends ".orig" when absent
func (c *Codec) DecompressedPath(compressedPath string) string {
	if base, ok := strings.CutSuffix(compressedPath, Extension); ok && base != "" {
		return base
	}
	return compressedPath + FallbackExtension
}

func init() {
	codec.Register(NewCodec())
}
