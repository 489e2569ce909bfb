package markers

import (
	"bytes"
	"testing"
)

func int32_le(n int) []byte {
	return []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
}

// skill_entry builds one on-disk skill entry: signature, 4 skipped type-ID
// bytes, base, effective.
func skill_entry(base, effective int) []byte {
	out := append([]byte{}, Skills.Signature...)
	out = append(out, 0xDE, 0xAD, 0xBE, 0xEF)
	out = append(out, int32_le(base)...)
	out = append(out, int32_le(effective)...)
	return out
}

func Test_find_all_order(t *testing.T) {
	data := []byte("leading junk")
	data = append(data, skill_entry(10, 15)...)
	data = append(data, []byte("filler between entries")...)
	data = append(data, skill_entry(20, 20)...)
	data = append(data, skill_entry(30, 45)...)
	data = append(data, []byte("trailing junk")...)

	matches := Find_all(data, Skills)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	want := [][2]int{{10, 15}, {20, 20}, {30, 45}}
	for i, m := range matches {
		if m.Values[0] != want[i][0] || m.Values[1] != want[i][1] {
			t.Errorf("match %d: got %v, want %v", i, m.Values, want[i])
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Pattern_offset <= matches[i-1].Pattern_offset {
			t.Error("matches not in buffer order")
		}
	}
}

func Test_find_all_plausibility(t *testing.T) {
	// Base 500 is over the 300 cap; the whole match must be dropped,
	// silently, with the plausible neighbour still found.
	data := skill_entry(500, 500)
	data = append(data, skill_entry(55, 83)...)

	matches := Find_all(data, Skills)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Values[0] != 55 || matches[0].Values[1] != 83 {
		t.Errorf("got %v, want [55 83]", matches[0].Values)
	}
}

func Test_find_all_truncated_values(t *testing.T) {
	// Signature right at the end of the buffer, no room for the values.
	data := append([]byte("x"), Skills.Signature...)
	if got := Find_all(data, Skills); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func Test_attribute_base_floor(t *testing.T) {
	entry := func(base, effective int) []byte {
		out := append([]byte{}, Attributes.Signature...)
		out = append(out, 0, 0, 0, 0)
		out = append(out, int32_le(base)...)
		out = append(out, int32_le(effective)...)
		return out
	}

	// Base 0 never occurs in real saves and must be treated as a collision.
	data := entry(0, 5)
	data = append(data, entry(7, 9)...)

	matches := Find_all(data, Attributes)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Values[0] != 7 {
		t.Errorf("got base %d, want 7", matches[0].Values[0])
	}
}

func Test_version_marker(t *testing.T) {
	data := []byte("prefix")
	data = append(data, Version.Signature...)
	data = append(data, make([]byte, 8)...)
	for _, n := range []int{1, 2, 0, 1370} {
		data = append(data, int32_le(n)...)
	}

	matches := Find_all(data, Version)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	want := []int{1, 2, 0, 1370}
	for i, n := range want {
		if matches[0].Values[i] != n {
			t.Errorf("value %d: got %d, want %d", i, matches[0].Values[i], n)
		}
	}
}

func Test_find_name(t *testing.T) {
	name := "Styg"
	data := []byte("junk before ")
	data = append(data, 0x06, 0x41, 0x42, 0x00, 0x00, byte(len(name)))
	data = append(data, []byte(name)...)
	data = append(data, []byte("...eG and padding beyond")...)

	got, ok := Find_name(data)
	if !ok {
		t.Fatal("name not found")
	}
	if got != name {
		t.Errorf("got %q, want %q", got, name)
	}
}

func Test_find_name_requires_sentinel(t *testing.T) {
	data := []byte{0x06, 0x41, 0x42, 0x00, 0x00, 4}
	data = append(data, []byte("Fake")...)
	data = append(data, bytes.Repeat([]byte{'x'}, 30)...)

	if _, ok := Find_name(data); ok {
		t.Error("accepted a candidate with no sentinel nearby")
	}
}

func Test_find_name_rejects_unprintable(t *testing.T) {
	data := []byte{0x06, 0x41, 0x42, 0x00, 0x00, 4, 'a', 0x01, 'c', 'd'}
	data = append(data, []byte("..eG........................")...)

	if _, ok := Find_name(data); ok {
		t.Error("accepted a name with unprintable bytes")
	}
}

func feat_entry(name string) []byte {
	out := []byte{0x0a, 0x0a, 0x06, 0x51, 0x52, 0x00, 0x00, byte(len(name))}
	return append(out, []byte(name)...)
}

func Test_find_feats(t *testing.T) {
	data := []byte("pre ")
	data = append(data, feat_entry("sprint")...)
	data = append(data, []byte(" gap ")...)
	data = append(data, feat_entry("o")...)
	data = append(data, []byte(" post")...)

	feats := Find_feats(data, 0, len(data))
	if len(feats) != 2 {
		t.Fatalf("expected 2 feats, got %d: %v", len(feats), feats)
	}
	if feats[0].Name != "sprint" || feats[1].Name != "o" {
		t.Errorf("got %q, %q", feats[0].Name, feats[1].Name)
	}
}

func Test_find_feats_lowercase_only(t *testing.T) {
	data := feat_entry("Sprint")
	data = append(data, feat_entry("quick1")...)
	data = append(data, feat_entry("nimble")...)

	feats := Find_feats(data, 0, len(data))
	if len(feats) != 1 || feats[0].Name != "nimble" {
		t.Errorf("expected only nimble, got %v", feats)
	}
}

func Test_feat_region(t *testing.T) {
	data := make([]byte, 20000)

	start, end := Feat_region(data, nil)
	if start != 5000 || end != 15000 {
		t.Errorf("unanchored region: got [%d,%d), want [5000,15000)", start, end)
	}

	skills := []Match{{Value_offset: 1000}, {Value_offset: 18000}}
	start, end = Feat_region(data, skills)
	if start != 18000 || end != 20000 {
		t.Errorf("anchored region: got [%d,%d), want [18000,20000)", start, end)
	}
}
