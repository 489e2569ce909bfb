package domain

import (
	"strings"

	"underdig/graph"
)

// Has_expedition reports whether the save carries the Expedition DLC,
// which adds a 24th skill.
func Has_expedition(skill_count int) bool {
	return skill_count >= 24
}

// Detect_xp_system looks for studied oddities anywhere in the graph.  Their
// presence proves the oddity system; their absence only suggests classic,
// so the second return says how sure we are.
func Detect_xp_system(g *graph.Graph) (string, bool) {
	for _, rec := range g.Records() {
		for _, key := range rec.Order {
			v := rec.Members[key]
			if s, ok := v.String_value(); ok && strings.Contains(s, "Oddity.") {
				return "oddity", true
			}
		}
	}
	return "classic", false
}

// Xp_needed estimates the experience required to reach the next level.
func Xp_needed(level int, xp_system string) int {
	if xp_system == "classic" {
		return level * 1000
	}
	if level >= 14 {
		return 30
	}
	return 2 * (level + 1)
}

// Max_skill_per_level is the game's cap on any single skill at a level.
func Max_skill_per_level(level int) int {
	return 10 + 5*level
}

// Total_skill_points is the pool of skill points available at a level.
func Total_skill_points(level int) int {
	return 120 + 40*level
}
