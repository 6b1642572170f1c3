package engine

import (
	"path/filepath"
	"strings"

	"github.com/cocosip/go-compengine/codec"
)

// CompressedPath is the default output of compressing in: in + extension
func CompressedPath(c codec.Codec, in string) string {
	return in + c.Extension()
}

// DecompressedPath is the default output of decompressing in. Codecs with
// their own convention implement codec.OutputNamer; otherwise the codec's
// extension is stripped, or ".out" appended when it is missing.
func DecompressedPath(c codec.Codec, in string) string {
	if n, ok := c.(codec.OutputNamer); ok {
		return n.DecompressedPath(in)
	}
	if base, ok := strings.CutSuffix(in, c.Extension()); ok && filepath.Base(in) != c.Extension() {
		return base
	}
	return in + ".out"
}
