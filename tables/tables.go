package tables

// Name tables for stats, skills, feats and item categories.  Item display
// names are in their own file because that table is large.

import (
	"regexp"
	"strings"
)

// Base attribute names, in save file order.
var Stat_names = []string{
	"Strength", "Dexterity", "Agility", "Constitution",
	"Perception", "Will", "Intelligence",
}

// Skill names in save file order.  The Expedition DLC inserts Temporal
// Manipulation after the other psi skills, so the lists diverge at index 20.
var Skill_names_base = []string{
	"Guns", "Heavy Guns", "Throwing", "Crossbows", "Melee",
	"Dodge", "Evasion",
	"Stealth", "Hacking", "Lockpicking", "Pickpocketing", "Traps",
	"Mechanics", "Electronics", "Chemistry", "Biology", "Tailoring",
	"Thought Control", "Psychokinesis", "Metathermics",
	"Persuasion", "Intimidation", "Mercantile",
}

var Skill_names_dlc = []string{
	"Guns", "Heavy Guns", "Throwing", "Crossbows", "Melee",
	"Dodge", "Evasion",
	"Stealth", "Hacking", "Lockpicking", "Pickpocketing", "Traps",
	"Mechanics", "Electronics", "Chemistry", "Biology", "Tailoring",
	"Thought Control", "Psychokinesis", "Metathermics", "Temporal Manipulation",
	"Persuasion", "Intimidation", "Mercantile",
}

// Skill_names picks the list matching how many skills the save carries.
func Skill_names(count int) []string {
	if count >= len(Skill_names_dlc) {
		return Skill_names_dlc
	}
	return Skill_names_base
}

// Display grouping, not save order.
var Skill_categories = map[string][]string{
	"Offense":    {"Guns", "Heavy Guns", "Throwing", "Crossbows", "Melee"},
	"Defense":    {"Dodge", "Evasion"},
	"Subterfuge": {"Stealth", "Hacking", "Lockpicking", "Pickpocketing", "Traps"},
	"Technology": {"Mechanics", "Electronics", "Chemistry", "Biology", "Tailoring"},
	"Psi":        {"Thought Control", "Psychokinesis", "Metathermics", "Temporal Manipulation"},
	"Social":     {"Persuasion", "Intimidation", "Mercantile"},
}

// Skill_category reverse-maps a skill name to its display group.
func Skill_category(skill string) string {
	for category, names := range Skill_categories {
		for _, name := range names {
			if name == skill {
				return category
			}
		}
	}
	return ""
}

// Feats are stored under internal abbreviations that don't always transform
// cleanly into the in-game name.
var Feat_display_names = map[string]string{
	"o":                "Opportunist",
	"pe":               "Psi Empathy",
	"heavypunch":       "Heavy Punch",
	"lightningpunches": "Lightning Punches",
	"surestep":         "Sure Step",
	"quickpockets":     "Quick Pockets",
	"steadyaim":        "Steady Aim",
	"burstfire":        "Burst Fire",
	"fullautoburst":    "Full Auto Burst",
	"cheapshots":       "Cheap Shots",
	"evasivemaneuvers": "Evasive Maneuvers",
	"freerunning":      "Free Running",
	"mentalsubversion": "Mental Subversion",
	"nimble":           "Nimble",
	"quicktinkering":   "Quick Tinkering",
	"trapexpert":       "Trap Expert",
	"interloper":       "Interloper",
	"sprint":           "Sprint",
	"specialattacks":   "Specialization: Unarmed Combat",
}

// Feat_display_name falls back to turning underscores into spaces and
// title-casing when the feat isn't in the table.
func Feat_display_name(internal string) string {
	if name, ok := Feat_display_names[internal]; ok {
		return name
	}
	return title_words(strings.ReplaceAll(internal, "_", " "))
}

// Item path prefixes mapped to display categories.  The saves mix cases.
var Item_categories = map[string]string{
	"currency":    "Currency",
	"devices":     "Devices",
	"Devices":     "Devices",
	"weapons":     "Weapons",
	"Weapons":     "Weapons",
	"armor":       "Armor",
	"consumables": "Consumables",
	"grenades":    "Grenades",
	"Grenades":    "Grenades",
	"traps":       "Traps",
	"components":  "Components",
	"Components":  "Components",
	"expendables": "Expendables",
	"Ammo":        "Ammo",
	"messages":    "Messages",
	"plot":        "Quest Items",
}

func Item_category(prefix string) string {
	if category, ok := Item_categories[prefix]; ok {
		return category
	}
	return title_words(prefix)
}

var (
	camel_split = regexp.MustCompile(`([a-z])([A-Z])`)
	digit_split = regexp.MustCompile(`([a-zA-Z])(\d+)$`)

	// Short words that stay fully capitalized in display names.
	acronyms = map[string]bool{
		"emp": true, "he": true, "tnt": true, "smg": true, "em": true,
		"jhp": true, "ap": true, "hp": true, "sgs": true, "li": true,
		"ai": true, "mk": true,
	}
)

// Item_display_name maps an item path's last segment to its in-game name,
// falling back to splitting camelCase and trailing digits apart and
// upper-casing known acronyms.
func Item_display_name(path string) string {
	segments := strings.Split(path, `\`)
	name := segments[len(segments)-1]

	if display, ok := Item_display_names[strings.ToLower(name)]; ok {
		return display
	}

	name = strings.ReplaceAll(name, "_", " ")
	name = camel_split.ReplaceAllString(name, "$1 $2")
	name = digit_split.ReplaceAllString(name, "$1 $2")

	words := strings.Fields(name)
	for i, word := range words {
		if acronyms[strings.ToLower(word)] {
			words[i] = strings.ToUpper(word)
		} else {
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func title_words(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}
