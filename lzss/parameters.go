package lzss

import (
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Params controls the match search.
type Params struct {
	// WindowSize is how far back a match may start (1..65535, the offset field is 16 bits)
	WindowSize int

	// Lookahead is the maximum match length (1..255, the length field is 8 bits)
	Lookahead int

	// MinMatch is the shortest match worth a 3-byte token
	MinMatch int
}

// DefaultParams returns window 4096, lookahead 18, minimum match 3.
func DefaultParams() Params {
	return Params{
		WindowSize: 4096,
		Lookahead:  18,
		MinMatch:   3,
	}
}

// Validate checks that the parameters fit the token format.
func (p Params) Validate() error {
	if p.WindowSize < 1 || p.WindowSize > 0xFFFF {
		return fmt.Errorf("lzss: window size %d outside 1..65535: %w", p.WindowSize, common.ErrUnsupported)
	}
	if p.Lookahead < 1 || p.Lookahead > 0xFF {
		return fmt.Errorf("lzss: lookahead %d outside 1..255: %w", p.Lookahead, common.ErrUnsupported)
	}
	if p.MinMatch < 1 || p.MinMatch > p.Lookahead {
		return fmt.Errorf("lzss: minimum match %d outside 1..%d: %w", p.MinMatch, p.Lookahead, common.ErrUnsupported)
	}
	return nil
}

// WithWindowSize sets the window size and returns the parameters for chaining
func (p Params) WithWindowSize(n int) Params {
	p.WindowSize = n
	return p
}

// WithLookahead sets the maximum match length and returns the parameters for chaining
func (p Params) WithLookahead(n int) Params {
	p.Lookahead = n
	return p
}

// WithMinMatch sets the minimum match length and returns the parameters for chaining
func (p Params) WithMinMatch(n int) Params {
	p.MinMatch = n
	return p
}
