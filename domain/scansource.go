package domain

import (
	"underdig/markers"
	"underdig/tables"
)

// ScanSource projects character data out of the raw unpacked save bytes
// using the heuristic marker scanner.  It predates the converter-backed
// source and stays around for saves the converter can't export; it can't
// see the character level, which has no reliable marker.
type ScanSource struct {
	Data []byte

	skill_matches []markers.Match
	scanned       bool
}

func New_scan_source(data []byte) *ScanSource {
	return &ScanSource{Data: data}
}

func (s *ScanSource) skills() []markers.Match {
	if !s.scanned {
		s.skill_matches = markers.Find_all(s.Data, markers.Skills)
		s.scanned = true
	}
	return s.skill_matches
}

func (s *ScanSource) Character_name() (string, bool) {
	return markers.Find_name(s.Data)
}

// Character_level always reports absence; levels aren't scannable.
func (s *ScanSource) Character_level() (int, bool) {
	return 0, false
}

func (s *ScanSource) Game_version() (Version, bool) {
	matches := markers.Find_all(s.Data, markers.Version)
	if len(matches) == 0 {
		return Version{}, false
	}
	v := matches[0].Values
	return Version{Major: v[0], Minor: v[1], Build: v[2], Revision: v[3]}, true
}

func (s *ScanSource) Attributes() []Attribute {
	matches := markers.Find_all(s.Data, markers.Attributes)

	attributes := []Attribute{}
	for i, m := range matches {
		if i >= len(tables.Stat_names) {
			break
		}
		attributes = append(attributes, Attribute{
			Name:      tables.Stat_names[i],
			Base:      m.Values[0],
			Effective: m.Values[1],
		})
	}
	return attributes
}

func (s *ScanSource) Skills() []Skill {
	matches := s.skills()
	names := tables.Skill_names(len(matches))

	skills := []Skill{}
	for i, m := range matches {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		skills = append(skills, Skill{
			Name:      name,
			Category:  tables.Skill_category(name),
			Base:      m.Values[0],
			Effective: m.Values[1],
		})
	}
	return skills
}

func (s *ScanSource) Feats() []Feat {
	start, end := markers.Feat_region(s.Data, s.skills())
	found := markers.Find_feats(s.Data, start, end)

	feats := []Feat{}
	for _, f := range found {
		feats = append(feats, Feat{
			Name:     tables.Feat_display_name(f.Name),
			Internal: f.Name,
		})
	}
	return feats
}

// XP reads the accumulated-experience marker when present.
func (s *ScanSource) XP() (int, bool) {
	matches := markers.Find_all(s.Data, markers.XP)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Values[0], true
}

// Currency reads the coin and credit stack counts straight off their item
// path markers.
func (s *ScanSource) Currency() (coins, credits int, ok bool) {
	coin_matches := markers.Find_all(s.Data, markers.Stygian_coins)
	credit_matches := markers.Find_all(s.Data, markers.SGS_credits)
	if len(coin_matches) == 0 && len(credit_matches) == 0 {
		return 0, 0, false
	}
	if len(coin_matches) > 0 {
		coins = coin_matches[0].Values[0]
	}
	if len(credit_matches) > 0 {
		credits = credit_matches[0].Values[0]
	}
	return coins, credits, true
}
