package tables

import "testing"

func Test_skill_name_lists(t *testing.T) {
	if len(Skill_names_base) != 23 {
		t.Errorf("base list has %d skills, want 23", len(Skill_names_base))
	}
	if len(Skill_names_dlc) != 24 {
		t.Errorf("dlc list has %d skills, want 24", len(Skill_names_dlc))
	}
	if Skill_names_dlc[20] != "Temporal Manipulation" {
		t.Errorf("dlc index 20: got %q", Skill_names_dlc[20])
	}
	// The two lists agree up to the insertion point.
	for i := 0; i < 20; i++ {
		if Skill_names_base[i] != Skill_names_dlc[i] {
			t.Errorf("lists diverge at %d: %q vs %q", i, Skill_names_base[i], Skill_names_dlc[i])
		}
	}
}

func Test_skill_names_selection(t *testing.T) {
	if got := Skill_names(23); len(got) != 23 {
		t.Errorf("23 skills: got the %d-entry list", len(got))
	}
	if got := Skill_names(24); len(got) != 24 {
		t.Errorf("24 skills: got the %d-entry list", len(got))
	}
	if got := Skill_names(30); len(got) != 24 {
		t.Errorf("30 skills: got the %d-entry list", len(got))
	}
}

func Test_skill_category(t *testing.T) {
	cases := map[string]string{
		"Guns":                  "Offense",
		"Dodge":                 "Defense",
		"Temporal Manipulation": "Psi",
		"Mercantile":            "Social",
		"Not A Skill":           "",
	}
	for skill, want := range cases {
		if got := Skill_category(skill); got != want {
			t.Errorf("%s: got %q, want %q", skill, got, want)
		}
	}
}

func Test_feat_display_name(t *testing.T) {
	cases := map[string]string{
		"o":              "Opportunist",
		"pe":             "Psi Empathy",
		"specialattacks": "Specialization: Unarmed Combat",
		// Unmapped names fall back to underscore splitting.
		"iron_will":       "Iron Will",
		"juggernaut":      "Juggernaut",
		"fast_metabolism": "Fast Metabolism",
	}
	for internal, want := range cases {
		if got := Feat_display_name(internal); got != want {
			t.Errorf("%s: got %q, want %q", internal, got, want)
		}
	}
}

func Test_item_display_name_table(t *testing.T) {
	cases := map[string]string{
		`devices\fishingrod`:   "Fishing Rod",
		`traps\beartrap`:       "Bear Trap",
		`currency\stygiancoin`: "Stygian Coin",
		`currency\sgscredits`:  "SGS Credits",
		`armor\WaistPack`:      "Waist Pack", // lookup is case-insensitive
		`grenades\he2`:         "HE Grenade Mk II",
	}
	for path, want := range cases {
		if got := Item_display_name(path); got != want {
			t.Errorf("%s: got %q, want %q", path, got, want)
		}
	}
}

func Test_item_display_name_fallback(t *testing.T) {
	cases := map[string]string{
		// camelCase split
		`weapons\rustyCombatKnife`: "Rusty Combat Knife",
		// trailing digits split off
		`devices\scanner3`: "Scanner 3",
		// underscores and acronyms
		`ammo\smg_magazine`:     "SMG Magazine",
		`expendables\empcharge`: "Empcharge",
	}
	for path, want := range cases {
		if got := Item_display_name(path); got != want {
			t.Errorf("%s: got %q, want %q", path, got, want)
		}
	}
}

func Test_item_category(t *testing.T) {
	cases := map[string]string{
		"grenades": "Grenades",
		"Grenades": "Grenades",
		"plot":     "Quest Items",
		"messages": "Messages",
		"oddities": "Oddities", // unmapped prefixes get title-cased
	}
	for prefix, want := range cases {
		if got := Item_category(prefix); got != want {
			t.Errorf("%s: got %q, want %q", prefix, got, want)
		}
	}
}

func Test_stat_names(t *testing.T) {
	if len(Stat_names) != 7 {
		t.Fatalf("got %d stats, want 7", len(Stat_names))
	}
	if Stat_names[0] != "Strength" || Stat_names[6] != "Intelligence" {
		t.Errorf("stat order wrong: %v", Stat_names)
	}
}
