package codec

import (
	"errors"
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Result codes. Zero is success, negative values are failures detected by
// the library; positive values are left to the host for system errors.
const (
	CodeOK             int32 = 0
	CodeReadError      int32 = -1
	CodeWriteError     int32 = -2
	CodeFormatError    int32 = -3
	CodeTruncated      int32 = -4
	CodeCorrupt        int32 = -5
	CodeUnsupported    int32 = -6
	CodeNotImplemented int32 = -7
	CodeUnknownAlgo    int32 = -99
)

var codeText = map[int32]string{
	CodeOK:             "ok",
	CodeReadError:      "input unreadable",
	CodeWriteError:     "output unwritable",
	CodeFormatError:    "format error",
	CodeTruncated:      "truncated input",
	CodeCorrupt:        "corrupt input",
	CodeUnsupported:    "unsupported input",
	CodeNotImplemented: "not implemented",
	CodeUnknownAlgo:    "unknown algorithm",
}

// CodeText returns a short description of a result code.
func CodeText(code int32) string {
	if s, ok := codeText[code]; ok {
		return s
	}
	if code > 0 {
		return fmt.Sprintf("system error %d", code)
	}
	return fmt.Sprintf("error %d", code)
}

// Result is the outcome of every dispatch call.
type Result struct {
	BytesIn  uint32
	BytesOut uint32
	Error    int32
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Error == CodeOK
}

// Ratio returns BytesOut/BytesIn, or 0 when nothing was read.
func (r Result) Ratio() float32 {
	if r.BytesIn == 0 {
		return 0
	}
	return float32(r.BytesOut) / float32(r.BytesIn)
}

// Code classifies err into a result code.
func Code(err error) int32 {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrUnknownAlgorithm), errors.Is(err, ErrCodecNotFound):
		return CodeUnknownAlgo
	case errors.Is(err, common.ErrNotImplemented):
		return CodeNotImplemented
	case errors.Is(err, common.ErrWrite):
		return CodeWriteError
	case errors.Is(err, common.ErrIO):
		return CodeReadError
	case errors.Is(err, common.ErrTruncated):
		return CodeTruncated
	case errors.Is(err, common.ErrCorrupt):
		return CodeCorrupt
	case errors.Is(err, common.ErrUnsupported):
		return CodeUnsupported
	case errors.Is(err, common.ErrFormat):
		return CodeFormatError
	default:
		return CodeFormatError
	}
}

// clamp32 saturates n to the uint32 range used by Result.
func clamp32(n int) uint32 {
	if n < 0 {
		return 0
	}
	if uint64(n) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(n)
}

// NewResult builds a Result from byte counts and an error.
func NewResult(in, out int, err error) Result {
	return Result{BytesIn: clamp32(in), BytesOut: clamp32(out), Error: Code(err)}
}
