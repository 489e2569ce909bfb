package markers

// Heuristic scanning of the raw (unpacked) payload.  The serialized format is
// undocumented, so we look for fixed byte signatures and decode fixed-width
// little-endian ints near them.  Signatures collide with unrelated data all
// the time; the plausibility ranges exist to silently absorb those false
// positives.  Rejection is never an error.

import (
	"bytes"
)

// Range is an inclusive plausibility bound for one decoded value.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Pattern describes one marker: a fixed signature, a skip from the end of the
// signature to the value region, and one Range per consecutive int32 value.
type Pattern struct {
	Name      string
	Signature []byte
	Skip      int
	Ranges    []Range
}

// Match is one accepted occurrence of a pattern.  Matches are reported in
// ascending buffer order; that order is the only signal tying a match to its
// domain index (the Nth skill match is the Nth skill in the name table).
type Match struct {
	Pattern_offset int
	Value_offset   int
	Values         []int
}

// Built-in patterns.
//
// The 4-byte skip after the skill/attribute signatures is a serializer type
// ID which varies between saves, hence it is skipped rather than matched.
var (
	// Per-skill entries: base then effective value.
	Skills = Pattern{
		Name:      "skills",
		Signature: []byte("eSKC\x02\x00\x00\x00\x02\x00\x00\x00\x09"),
		Skip:      4,
		Ranges:    []Range{{0, 300}, {0, 600}},
	}

	// Base attributes (Strength..Intelligence): base then effective.
	// Base 0 is deliberately implausible here: the game never rolls an
	// attribute below 1, and admitting 0 lets in far more signature
	// collisions than it could ever recover legitimate entries.
	Attributes = Pattern{
		Name:      "attributes",
		Signature: []byte("ESI\x02\x00\x00\x00\x02\x00\x00\x00\x09"),
		Skip:      4,
		Ranges:    []Range{{1, 30}, {0, 50}},
	}

	// System.Version structure: major, minor, build, revision.
	Version = Pattern{
		Name:      "version",
		Signature: []byte("System.Version\x04\x00\x00\x00\x06_Major\x06_Minor\x06_Build\x09_Revision"),
		Skip:      8,
		Ranges:    []Range{{0, 10}, {0, 100}, {0, 1000}, {0, 10000}},
	}

	// Accumulated experience.  Rarely present in oddity-system saves.
	XP = Pattern{
		Name:      "xp",
		Signature: []byte("eXP\x02\x00\x00\x00\x01\x00\x00\x00\x09"),
		Skip:      4,
		Ranges:    []Range{{0, 10000000}},
	}

	// Currency stacks are found via their item paths; the count sits a
	// fixed distance past the path text.
	Stygian_coins = Pattern{
		Name:      "stygian coins",
		Signature: []byte("currency\\stygiancoin"),
		Skip:      5,
		Ranges:    []Range{{0, 5000000}},
	}

	SGS_credits = Pattern{
		Name:      "sgs credits",
		Signature: []byte("currency\\sgscredits"),
		Skip:      5,
		Ranges:    []Range{{0, 5000000}},
	}
)

func read_int32_le(data []byte, at int) int {
	n := uint32(data[at]) | uint32(data[at+1])<<8 | uint32(data[at+2])<<16 | uint32(data[at+3])<<24
	return int(int32(n))
}

// Find_all returns every plausible occurrence of a pattern, in buffer order.
// The search offset advances by 1 after each signature hit, not by the
// signature length, so overlapping encodings are not missed.
func Find_all(data []byte, p Pattern) []Match {
	out := []Match{}

	idx := 0
	for {
		rel := bytes.Index(data[idx:], p.Signature)
		if rel < 0 {
			break
		}
		idx += rel

		value_offset := idx + len(p.Signature) + p.Skip
		if value_offset+4*len(p.Ranges) <= len(data) {
			values := make([]int, len(p.Ranges))
			ok := true
			for i, r := range p.Ranges {
				values[i] = read_int32_le(data, value_offset+4*i)
				if !r.Contains(values[i]) {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, Match{
					Pattern_offset: idx,
					Value_offset:   value_offset,
					Values:         values,
				})
			}
		}

		idx += 1
	}

	return out
}
