package comparison

import (
	"bytes"
	"errors"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/zstd"
)

// Reference is an ecosystem compressor the built-in codecs are measured against.
type Reference struct {
	Name string

	// Compress returns the encoded size in bytes
	Compress func(data []byte) (int, error)
}

// References returns the reference compressors: zstd for a general-purpose
// baseline, huff0 against the Huffman coder and DEFLATE against LZSS.
func References() []Reference {
	return []Reference{
		{Name: "zstd", Compress: zstdSize},
		{Name: "huff0", Compress: huff0Size},
		{Name: "deflate", Compress: deflateSize},
	}
}

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(
			nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

func zstdSize(data []byte) (int, error) {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(data, nil)
	zstdEncPool.Put(enc)
	return len(out), nil
}

// huff0Size reports a single-stream table + payload. Blocks huff0 refuses
// are counted the way a container would store them: raw, or one byte for
// a run of a single value.
func huff0Size(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var s huff0.Scratch
	out, _, err := huff0.Compress1X(data, &s)
	switch {
	case errors.Is(err, huff0.ErrIncompressible):
		return len(data), nil
	case errors.Is(err, huff0.ErrUseRLE):
		return 1, nil
	case err != nil:
		return 0, err
	}
	return len(out), nil
}

func deflateSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
