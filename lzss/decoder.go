package lzss

import (
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// Decode expands a token stream produced by Encode. Matches are copied one
// byte at a time, so a length larger than the offset repeats the bytes the
// match itself has just produced.
func Decode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)
	pos := 0

	for pos < len(data) {
		flags := data[pos]
		pos++

		for bit := 0; bit < tokensPerGroup && pos < len(data); bit++ {
			if flags&(1<<uint(bit)) == 0 {
				out = append(out, data[pos])
				pos++
				continue
			}

			if len(data)-pos < matchTokenSize {
				return nil, fmt.Errorf("lzss: match token at byte %d needs %d bytes, %d left: %w",
					pos, matchTokenSize, len(data)-pos, common.ErrTruncated)
			}
			offset := int(data[pos]) | int(data[pos+1])<<8
			length := int(data[pos+2])

			if offset == 0 || length == 0 || offset > len(out) {
				return nil, fmt.Errorf("lzss: match (offset %d, length %d) at byte %d with %d bytes decoded: %w",
					offset, length, pos, len(out), common.ErrCorrupt)
			}
			pos += matchTokenSize

			from := len(out) - offset
			for k := 0; k < length; k++ {
				out = append(out, out[from+k])
			}
		}
	}

	return out, nil
}
