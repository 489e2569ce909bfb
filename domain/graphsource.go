package domain

import (
	"underdig/graph"
	"underdig/tables"
)

// GraphSource projects character data out of the converter's record graph by
// walking member paths from the player record.
type GraphSource struct {
	G *graph.Graph
}

func New_graph_source(g *graph.Graph) *GraphSource {
	return &GraphSource{G: g}
}

func (s *GraphSource) Character_name() (string, bool) {
	player := s.G.Player()
	if player == nil {
		return "", false
	}
	return s.G.Member_str(player, "C1:N")
}

func (s *GraphSource) Character_level() (int, bool) {
	player := s.G.Player()
	if player == nil {
		return 0, false
	}
	return s.G.Member_int(player, "C1:L")
}

// Game_version reads the first System.Version record.
func (s *GraphSource) Game_version() (Version, bool) {
	for _, rec := range s.G.Records() {
		if rec.Name != "System.Version" {
			continue
		}
		var v Version
		v.Major, _ = s.G.Member_int(rec, "_Major")
		v.Minor, _ = s.G.Member_int(rec, "_Minor")
		v.Build, _ = s.G.Member_int(rec, "_Build")
		v.Revision, _ = s.G.Member_int(rec, "_Revision")
		return v, true
	}
	return Version{}, false
}

func (s *GraphSource) Attributes() []Attribute {
	player := s.G.Player()
	if player == nil {
		return nil
	}
	container := s.G.Member_record(player, "C1:BA")
	if container == nil {
		return nil
	}

	count := s.G.Count(container, "BA3:BA")
	attributes := []Attribute{}
	for i := 0; i < count; i++ {
		attr := s.G.Element(container, "BA3:BA", i)
		if attr == nil {
			continue
		}
		name, ok := s.G.Member_str(attr, "BA2:N")
		if !ok {
			continue
		}
		base, _ := s.G.Member_int(attr, "S4:V")
		effective, _ := s.G.Member_int(attr, "S4:MV")
		attributes = append(attributes, Attribute{Name: name, Base: base, Effective: effective})
	}
	return attributes
}

// Skills walks the player's skill container.  Skill names aren't stored in
// the save; they come from the name table matching the skill count.
func (s *GraphSource) Skills() []Skill {
	player := s.G.Player()
	if player == nil {
		return nil
	}
	container := s.G.Member_record(player, "C1:S")
	if container == nil {
		return nil
	}

	count := s.G.Count(container, "S3:S")
	names := tables.Skill_names(count)

	skills := []Skill{}
	for i := 0; i < count; i++ {
		skill := s.G.Element(container, "S3:S", i)
		if skill == nil {
			continue
		}
		base, _ := s.G.Member_int(skill, "S4:V")
		effective, _ := s.G.Member_int(skill, "S4:MV")

		name := ""
		if i < len(names) {
			name = names[i]
		}
		skills = append(skills, Skill{
			Name:      name,
			Category:  tables.Skill_category(name),
			Base:      base,
			Effective: effective,
		})
	}
	return skills
}

func (s *GraphSource) Feats() []Feat {
	player := s.G.Player()
	if player == nil {
		return nil
	}
	container := s.G.Member_record(player, "C1:F")
	if container == nil {
		return nil
	}

	count := s.G.Count(container, "F:F")
	feats := []Feat{}
	for i := 0; i < count; i++ {
		feat := s.G.Element(container, "F:F", i)
		if feat == nil {
			continue
		}
		internal, ok := s.G.Member_str(feat, "FR:FTN")
		if !ok || internal == "" {
			continue
		}
		feats = append(feats, Feat{
			Name:     tables.Feat_display_name(internal),
			Internal: internal,
		})
	}
	return feats
}
