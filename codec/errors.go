package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrUnknownAlgorithm is returned for an algorithm selector outside the enumeration
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
