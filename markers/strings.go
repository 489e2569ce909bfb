package markers

// Two specialized scans that decode variable-length strings rather than
// fixed-width ints: the character name and the feat names.

import (
	"bytes"
)

func printable(b byte) bool {
	return b >= 32 && b <= 126
}

func lower_alpha(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// Find_name locates the character name.
//
// Layout: 0x06, two varying bytes, 00 00, a length byte in [3,30], then that
// many printable-ASCII bytes.  The bytes after 0x06 differ between saves, so
// the real disambiguator is the "eG" sentinel that must appear within 20
// bytes after the string; without it the candidate is rejected.
func Find_name(data []byte) (string, bool) {
	for i := 0; i+5 < len(data); i++ {
		if data[i] != 0x06 || data[i+3] != 0x00 || data[i+4] != 0x00 {
			continue
		}

		length := int(data[i+5])
		if length < 3 || length > 30 {
			continue
		}

		name_start := i + 6
		name_end := name_start + length
		if name_end+20 > len(data) {
			continue
		}

		ok := true
		for _, b := range data[name_start:name_end] {
			if !printable(b) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		if !bytes.Contains(data[name_end:name_end+20], []byte("eG")) {
			continue
		}

		return string(data[name_start:name_end]), true
	}

	return "", false
}

// FeatMatch is one feat name recovered from the payload.
type FeatMatch struct {
	Name   string
	Offset int
}

// Feat_region picks the slice of the payload worth scanning for feats: from
// the last skill match extending 5000 bytes forward, or the middle half of
// the payload when no skill matches exist to anchor on.
func Feat_region(data []byte, skills []Match) (int, int) {
	if len(skills) > 0 {
		start := skills[len(skills)-1].Value_offset
		end := start + 5000
		if end > len(data) {
			end = len(data)
		}
		return start, end
	}
	return len(data) / 4, len(data) * 3 / 4
}

// Find_feats scans [start,end) for feat entries.
//
// Layout: 0a 0a 06, two ID bytes, 00 00, a length byte in [1,30], then the
// feat's internal name.  Names are stored as all-lowercase letters (some are
// single-letter abbreviations like "o"); anything else is a collision.
func Find_feats(data []byte, start, end int) []FeatMatch {
	if start < 0 {
		start = 0
	}
	if end > len(data) {
		end = len(data)
	}

	header := []byte{0x0a, 0x0a, 0x06}
	out := []FeatMatch{}
	seen := map[int]bool{}

	idx := start
	for idx < end {
		rel := bytes.Index(data[idx:end], header)
		if rel < 0 {
			break
		}
		idx += rel

		length_offset := idx + 7
		if length_offset >= len(data) {
			break
		}

		length := int(data[length_offset])
		if length >= 1 && length <= 30 {
			name_start := length_offset + 1
			name_end := name_start + length
			if name_end <= len(data) && !seen[name_start] {
				ok := true
				for _, b := range data[name_start:name_end] {
					if !lower_alpha(b) {
						ok = false
						break
					}
				}
				if ok {
					seen[name_start] = true
					out = append(out, FeatMatch{
						Name:   string(data[name_start:name_end]),
						Offset: name_start,
					})
				}
			}
		}

		idx += 1
	}

	return out
}
