package dct

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cocosip/go-compengine/common"
)

// Source decodes one image container format into an Image.
type Source interface {
	// Name identifies the format in error messages
	Name() string

	// Match sniffs the leading bytes of a file
	Match(head []byte) bool

	// Decode converts a whole file. path is the file data came from, or
	// empty for in-memory input.
	Decode(path string, data []byte) (*Image, error)
}

// sources are tried in order; the standard image fallback goes last
var sources = []Source{
	netpbmSource{},
	dicomSource{},
	stdImageSource{},
}

// ReadImage loads and decodes the image at path. An unreadable or empty
// file is an I/O error; anything the sources cannot decode is unsupported.
func ReadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dct: %v: %w", err, common.ErrIO)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("dct: %s is empty: %w", path, common.ErrIO)
	}
	return decodeImage(path, data)
}

// DecodeImage decodes an in-memory image. DICOM input has to come from a
// file, see ReadImage.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("dct: empty image: %w", common.ErrIO)
	}
	return decodeImage("", data)
}

func decodeImage(path string, data []byte) (*Image, error) {
	for _, s := range sources {
		if !s.Match(data) {
			continue
		}
		img, err := s.Decode(path, data)
		if err != nil {
			return nil, err
		}
		if err := img.Validate(); err != nil {
			return nil, fmt.Errorf("dct: %s: %w", s.Name(), err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("dct: unrecognized image format: %w", common.ErrUnsupported)
}

// sourceError marks a decode failure of a known container format
func sourceError(s Source, format string, args ...any) error {
	return fmt.Errorf("dct: %s: %s: %w", s.Name(), fmt.Sprintf(format, args...), common.ErrUnsupported)
}

// hasPrefixAt reports whether data holds prefix at offset off
func hasPrefixAt(data []byte, off int, prefix string) bool {
	return len(data) >= off+len(prefix) && bytes.Equal(data[off:off+len(prefix)], []byte(prefix))
}
