package lzss

const (
	tokensPerGroup = 8
	matchTokenSize = 3
)

// Match is a back-reference into already processed input. Length 0 means
// no usable match.
type Match struct {
	Offset int
	Length int
}

// FindMatch returns the longest match for data[pos:] starting inside the
// window. Candidates are scanned from the oldest position forward and a
// match only replaces the current best when strictly longer, so the
// earliest of equally long matches wins. The scan stops as soon as a match
// reaches the longest length possible at pos. Matches shorter than
// p.MinMatch are reported as Match{}.
func FindMatch(data []byte, pos int, p Params) Match {
	var best Match
	if pos == 0 || pos >= len(data) {
		return best
	}

	start := pos - p.WindowSize
	if start < 0 {
		start = 0
	}
	maxLen := len(data) - pos
	if maxLen > p.Lookahead {
		maxLen = p.Lookahead
	}

	for j := start; j < pos; j++ {
		k := 0
		// j+k may run past pos; those bytes are still input, which the
		// decoder reproduces with an overlapping copy
		for k < maxLen && data[j+k] == data[pos+k] {
			k++
		}
		if k > best.Length {
			best = Match{Offset: pos - j, Length: k}
			if k == maxLen {
				break
			}
		}
	}

	if best.Length < p.MinMatch {
		return Match{}
	}
	return best
}

// Encode compresses data with DefaultParams.
func Encode(data []byte) []byte {
	out, _ := EncodeWithParams(data, DefaultParams())
	return out
}

// EncodeWithParams compresses data as a sequence of groups: a flag byte
// followed by up to eight tokens. Flag bit i set means token i is a match
// (offset u16 little-endian, length u8); clear means one literal byte.
func EncodeWithParams(data []byte, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(data)+len(data)/tokensPerGroup+1)
	pos := 0
	for pos < len(data) {
		flagIndex := len(out)
		out = append(out, 0)
		var flags byte

		for bit := 0; bit < tokensPerGroup && pos < len(data); bit++ {
			m := FindMatch(data, pos, p)
			if m.Length > 0 {
				flags |= 1 << uint(bit)
				out = append(out, byte(m.Offset), byte(m.Offset>>8), byte(m.Length))
				pos += m.Length
				continue
			}
			out = append(out, data[pos])
			pos++
		}

		out[flagIndex] = flags
	}

	return out, nil
}
