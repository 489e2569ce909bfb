package domain

// Character-facing views over a parsed save.  Two sources produce them: the
// record graph from the converter (primary) and a raw byte scan of the
// unpacked save (legacy, kept for saves the converter chokes on).

import "fmt"

type Attribute struct {
	Name      string
	Base      int
	Effective int
}

type Skill struct {
	Name      string
	Category  string
	Base      int
	Effective int
}

type Feat struct {
	Name     string
	Internal string
}

type Version struct {
	Major, Minor, Build, Revision int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Source is anything that can project character data out of a save.
type Source interface {
	Character_name() (string, bool)
	Character_level() (int, bool)
	Game_version() (Version, bool)
	Attributes() []Attribute
	Skills() []Skill
	Feats() []Feat
}
