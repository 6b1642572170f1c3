package engine

import (
	"fmt"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/cocosip/go-compengine/codec"
	"github.com/cocosip/go-compengine/common"

	// built-in codecs
	_ "github.com/cocosip/go-compengine/dct"
	_ "github.com/cocosip/go-compengine/huffman"
	_ "github.com/cocosip/go-compengine/lzss"
)

var log = logging.MustGetLogger("compengine/engine")

// Engine dispatches compress and decompress requests to codecs. It is safe
// for concurrent use as long as concurrent calls use disjoint paths.
type Engine struct {
	registry *codec.Registry

	mu         sync.Mutex
	defaultAlg codec.Algorithm
	telemetry  Telemetry
}

// Option configures an Engine
type Option func(*Engine)

// WithRegistry makes the engine resolve algorithms through r
func WithRegistry(r *codec.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithCodec registers c with the engine, replacing the built-in codec for
// the same algorithm
func WithCodec(c codec.Codec) Option {
	return func(e *Engine) {
		e.registry.Register(c)
	}
}

// New creates an engine over a copy of the default codec registry.
// The default algorithm is Huffman.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry:   codec.Default().Clone(),
		defaultAlg: codec.Huffman,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves algorithms through
func (e *Engine) Registry() *codec.Registry {
	return e.registry
}

// Compress compresses path into its default output path (path + extension)
func (e *Engine) Compress(algo codec.Algorithm, path string) codec.Result {
	c, err := e.registry.Lookup(algo)
	if err != nil {
		return e.fail(algo, "compress", path, err)
	}
	return e.CompressFile(algo, path, CompressedPath(c, path))
}

// Decompress decompresses path into the codec's default output path
func (e *Engine) Decompress(algo codec.Algorithm, path string) codec.Result {
	c, err := e.registry.Lookup(algo)
	if err != nil {
		return e.fail(algo, "decompress", path, err)
	}
	return e.DecompressFile(algo, path, DecompressedPath(c, path))
}

// CompressDefault compresses path with the current default algorithm
func (e *Engine) CompressDefault(path string) codec.Result {
	return e.Compress(e.Default(), path)
}

// CompressFile compresses in and writes the result to out
func (e *Engine) CompressFile(algo codec.Algorithm, in, out string) codec.Result {
	c, err := e.lookup(algo, in, out)
	if err != nil {
		return e.fail(algo, "compress", in, err)
	}
	log.Infof("compress %s with %s -> %s", in, c.Name(), out)

	var (
		size    int
		encoded []byte
	)
	if fc, ok := c.(codec.FileCompressor); ok {
		// the codec reads the file itself
		var st os.FileInfo
		if st, err = os.Stat(in); err != nil {
			return e.fail(algo, "compress", in, fmt.Errorf("%v: %w", err, common.ErrIO))
		}
		size = int(st.Size())
		encoded, err = fc.CompressFile(in)
	} else {
		var data []byte
		if data, err = readInput(in); err != nil {
			return e.fail(algo, "compress", in, err)
		}
		size = len(data)
		encoded, err = c.Compress(data)
	}
	if err != nil {
		return e.failSized(algo, "compress", in, size, err)
	}

	if err := writeFileAtomic(out, encoded); err != nil {
		return e.failSized(algo, "compress", in, size, err)
	}
	return e.succeed(algo, "compress", size, len(encoded))
}

// DecompressFile decompresses in and writes the result to out
func (e *Engine) DecompressFile(algo codec.Algorithm, in, out string) codec.Result {
	c, err := e.lookup(algo, in, out)
	if err != nil {
		return e.fail(algo, "decompress", in, err)
	}
	log.Infof("decompress %s with %s -> %s", in, c.Name(), out)

	data, err := readInput(in)
	if err != nil {
		return e.fail(algo, "decompress", in, err)
	}

	decoded, err := c.Decompress(data)
	if err != nil {
		return e.failSized(algo, "decompress", in, len(data), err)
	}

	if err := writeFileAtomic(out, decoded); err != nil {
		return e.failSized(algo, "decompress", in, len(data), err)
	}
	return e.succeed(algo, "decompress", len(data), len(decoded))
}

// CompressFolder is not implemented and always reports CodeNotImplemented
func (e *Engine) CompressFolder(algo codec.Algorithm, dir string) codec.Result {
	if _, err := e.registry.Lookup(algo); err != nil {
		return e.fail(algo, "compress folder", dir, err)
	}
	return e.fail(algo, "compress folder", dir, fmt.Errorf("folder compression: %w", common.ErrNotImplemented))
}

// SetDefault changes the algorithm used by CompressDefault
func (e *Engine) SetDefault(algo codec.Algorithm) error {
	if !algo.Valid() {
		log.Warningf("rejected default algorithm %s", algo)
		return fmt.Errorf("set default %s: %w", algo, codec.ErrUnknownAlgorithm)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.defaultAlg = algo
	e.telemetry.LastAlgorithm = algo
	log.Debugf("default algorithm is now %s", algo)
	return nil
}

// Default returns the algorithm used by CompressDefault
func (e *Engine) Default() codec.Algorithm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultAlg
}

// Telemetry returns a snapshot of the last call's outcome
func (e *Engine) Telemetry() Telemetry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.telemetry
}

// lookup resolves the codec and rejects empty paths as unreadable input
// or unwritable output
func (e *Engine) lookup(algo codec.Algorithm, in, out string) (codec.Codec, error) {
	c, err := e.registry.Lookup(algo)
	if err != nil {
		return nil, err
	}
	if in == "" {
		return nil, fmt.Errorf("empty input path: %w", common.ErrIO)
	}
	if out == "" {
		return nil, fmt.Errorf("empty output path for %s: %w", in, common.ErrWrite)
	}
	return c, nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, common.ErrIO)
	}
	return data, nil
}

func (e *Engine) succeed(algo codec.Algorithm, op string, in, out int) codec.Result {
	res := codec.NewResult(in, out, nil)
	log.Infof("%s %s: %d -> %d bytes (ratio %.3f)", op, algo, res.BytesIn, res.BytesOut, res.Ratio())
	e.record(algo, res)
	return res
}

func (e *Engine) fail(algo codec.Algorithm, op, path string, err error) codec.Result {
	return e.failSized(algo, op, path, 0, err)
}

func (e *Engine) failSized(algo codec.Algorithm, op, path string, in int, err error) codec.Result {
	res := codec.NewResult(in, 0, err)
	log.Warningf("%s %s with %s failed (code %d): %v", op, path, algo, res.Error, err)
	e.record(algo, res)
	return res
}

func (e *Engine) record(algo codec.Algorithm, res codec.Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.telemetry.record(algo, res)
}

var std = New()

// Std returns the engine used by the package-level functions
func Std() *Engine {
	return std
}

// Compress compresses path with the package-level engine
func Compress(algo codec.Algorithm, path string) codec.Result {
	return std.Compress(algo, path)
}

// Decompress decompresses path with the package-level engine
func Decompress(algo codec.Algorithm, path string) codec.Result {
	return std.Decompress(algo, path)
}
