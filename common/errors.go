package common

import "errors"

// Error categories shared by all codecs. Codec packages wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify failures with errors.Is.
var (
	ErrIO             = errors.New("i/o error")
	ErrWrite          = errors.New("output not writable")
	ErrFormat         = errors.New("malformed header")
	ErrTruncated      = errors.New("truncated stream")
	ErrCorrupt        = errors.New("corrupt stream")
	ErrUnsupported    = errors.New("unsupported input")
	ErrNotImplemented = errors.New("not implemented")

	// ErrEOF is returned by BitReader when no bits are left.
	ErrEOF = errors.New("no more bits to read")
)
