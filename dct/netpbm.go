package dct

import (
	"strconv"
)

// netpbmSource reads binary PGM (P5) and PPM (P6) with maxval up to 255.
// Samples are used as stored; maxval only bounds the header.
type netpbmSource struct{}

func (netpbmSource) Name() string { return "netpbm" }

func (netpbmSource) Match(head []byte) bool {
	return hasPrefixAt(head, 0, "P5") || hasPrefixAt(head, 0, "P6")
}

func (s netpbmSource) Decode(_ string, data []byte) (*Image, error) {
	channels := 1
	if data[1] == '6' {
		channels = 3
	}

	pos := 2
	var fields [3]int
	for i := range fields {
		v, next, ok := netpbmInt(data, pos)
		if !ok {
			return nil, sourceError(s, "malformed header")
		}
		fields[i], pos = v, next
	}
	width, height, maxval := fields[0], fields[1], fields[2]

	if width <= 0 || height <= 0 {
		return nil, sourceError(s, "bad size %dx%d", width, height)
	}
	if maxval < 1 || maxval > 255 {
		return nil, sourceError(s, "maxval %d, only 8-bit samples are supported", maxval)
	}

	// exactly one whitespace byte separates the header from the raster
	if pos >= len(data) || !isSpace(data[pos]) {
		return nil, sourceError(s, "missing raster")
	}
	pos++

	need := width * height * channels
	if len(data)-pos < need {
		return nil, sourceError(s, "raster has %d bytes, need %d", len(data)-pos, need)
	}

	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      data[pos : pos+need],
	}, nil
}

// netpbmInt skips whitespace and '#' comments, then parses a decimal field
func netpbmInt(data []byte, pos int) (v, next int, ok bool) {
	for pos < len(data) {
		switch {
		case isSpace(data[pos]):
			pos++
		case data[pos] == '#':
			for pos < len(data) && data[pos] != '\n' && data[pos] != '\r' {
				pos++
			}
		default:
			start := pos
			for pos < len(data) && data[pos] >= '0' && data[pos] <= '9' {
				pos++
			}
			if pos == start || pos-start > 9 {
				return 0, pos, false
			}
			n, err := strconv.Atoi(string(data[start:pos]))
			return n, pos, err == nil
		}
	}
	return 0, pos, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
