package domain

import (
	"strconv"
	"testing"

	"underdig/graph"
)

// player_graph wires up a root, player, containers for two attributes, three
// skills and one feat, plus a version record.
func player_graph() *graph.Graph {
	root := &graph.Record{ID: 1, Name: "TG", Tag: "class"}
	root.Set("TG:PC", graph.Ref_value(2))

	player := &graph.Record{ID: 2, Name: "P2", Tag: "class"}
	player.Set("C1:N", graph.Wrapped_value(graph.Str_value("Vera")))
	player.Set("C1:L", graph.Int_value(8))
	player.Set("C1:BA", graph.Ref_value(3))
	player.Set("C1:S", graph.Ref_value(4))
	player.Set("C1:F", graph.Ref_value(5))

	ba := &graph.Record{ID: 3, Name: "BA3", Tag: "class"}
	ba.Set("BA3:BA:Count", graph.Int_value(2))
	ba.Set("BA3:BA:0", graph.Ref_value(10))
	ba.Set("BA3:BA:1", graph.Ref_value(11))

	attr0 := &graph.Record{ID: 10, Name: "BA2", Tag: "class"}
	attr0.Set("BA2:N", graph.Wrapped_value(graph.Str_value("Strength")))
	attr0.Set("S4:V", graph.Int_value(5))
	attr0.Set("S4:MV", graph.Int_value(7))

	attr1 := &graph.Record{ID: 11, Name: "BA2", Tag: "class"}
	attr1.Set("BA2:N", graph.Wrapped_value(graph.Str_value("Dexterity")))
	attr1.Set("S4:V", graph.Int_value(3))
	attr1.Set("S4:MV", graph.Int_value(3))

	skills := &graph.Record{ID: 4, Name: "S3", Tag: "class"}
	skills.Set("S3:S:Count", graph.Int_value(3))
	for i, id := range []int64{20, 21, 22} {
		skills.Set("S3:S:"+strconv.Itoa(i), graph.Ref_value(id))
	}

	skill_values := [][2]int{{55, 83}, {0, 0}, {15, 15}}
	skill_records := []*graph.Record{}
	for i, id := range []int64{20, 21, 22} {
		s := &graph.Record{ID: id, Name: "S5", Tag: "class"}
		s.Set("S4:V", graph.Int_value(skill_values[i][0]))
		s.Set("S4:MV", graph.Int_value(skill_values[i][1]))
		skill_records = append(skill_records, s)
	}

	feats := &graph.Record{ID: 5, Name: "F", Tag: "class"}
	feats.Set("F:F:Count", graph.Int_value(2))
	feats.Set("F:F:0", graph.Ref_value(30))
	feats.Set("F:F:1", graph.Ref_value(31))

	feat0 := &graph.Record{ID: 30, Name: "FR", Tag: "class"}
	feat0.Set("FR:FTN", graph.Wrapped_value(graph.Str_value("pe")))
	feat1 := &graph.Record{ID: 31, Name: "FR", Tag: "class"}
	feat1.Set("FR:FTN", graph.Wrapped_value(graph.Str_value("sprint")))

	version := &graph.Record{ID: 40, Name: "System.Version", Tag: "class"}
	version.Set("_Major", graph.Int_value(1))
	version.Set("_Minor", graph.Int_value(2))
	version.Set("_Build", graph.Int_value(0))
	version.Set("_Revision", graph.Int_value(1370))

	records := []*graph.Record{root, player, ba, attr0, attr1, skills, feats, feat0, feat1, version}
	records = append(records, skill_records...)
	return graph.Build(records)
}

func Test_graph_source_character(t *testing.T) {
	src := New_graph_source(player_graph())

	if name, ok := src.Character_name(); !ok || name != "Vera" {
		t.Errorf("name: got %q, %v", name, ok)
	}
	if level, ok := src.Character_level(); !ok || level != 8 {
		t.Errorf("level: got %d, %v", level, ok)
	}
	if v, ok := src.Game_version(); !ok || v.String() != "1.2.0.1370" {
		t.Errorf("version: got %v, %v", v, ok)
	}
}

func Test_graph_source_attributes(t *testing.T) {
	attrs := New_graph_source(player_graph()).Attributes()
	if len(attrs) != 2 {
		t.Fatalf("got %d attributes", len(attrs))
	}
	if attrs[0].Name != "Strength" || attrs[0].Base != 5 || attrs[0].Effective != 7 {
		t.Errorf("attr 0: got %+v", attrs[0])
	}
	if attrs[1].Name != "Dexterity" || attrs[1].Base != 3 {
		t.Errorf("attr 1: got %+v", attrs[1])
	}
}

func Test_graph_source_skills(t *testing.T) {
	skills := New_graph_source(player_graph()).Skills()
	if len(skills) != 3 {
		t.Fatalf("got %d skills", len(skills))
	}
	// With only 3 skills the base-game name table applies positionally.
	if skills[0].Name != "Guns" || skills[0].Category != "Offense" {
		t.Errorf("skill 0: got %+v", skills[0])
	}
	if skills[0].Base != 55 || skills[0].Effective != 83 {
		t.Errorf("skill 0 values: got %+v", skills[0])
	}
}

func Test_graph_source_feats(t *testing.T) {
	feats := New_graph_source(player_graph()).Feats()
	if len(feats) != 2 {
		t.Fatalf("got %d feats", len(feats))
	}
	if feats[0].Name != "Psi Empathy" || feats[0].Internal != "pe" {
		t.Errorf("feat 0: got %+v", feats[0])
	}
	if feats[1].Name != "Sprint" {
		t.Errorf("feat 1: got %+v", feats[1])
	}
}

func Test_graph_source_missing_player(t *testing.T) {
	g := graph.Build([]*graph.Record{})
	src := New_graph_source(g)

	if _, ok := src.Character_name(); ok {
		t.Error("found a name in an empty graph")
	}
	if got := src.Attributes(); len(got) != 0 {
		t.Errorf("got %d attributes from an empty graph", len(got))
	}
	if got := src.Skills(); len(got) != 0 {
		t.Errorf("got %d skills from an empty graph", len(got))
	}
}

// inventory_graph builds LIDP stacks with instance records, plus one
// message record that must be filtered out.
func inventory_graph() *graph.Graph {
	lidp := func(id int64, path string) *graph.Record {
		r := &graph.Record{ID: id, Name: "LIDP#G1>C00#-", Tag: "class"}
		r.Set("LIDP:P", graph.Wrapped_value(graph.Str_value(path)))
		return r
	}
	instance := func(id, dp int64, count, durability int) *graph.Record {
		r := &graph.Record{ID: id, Name: "II", Tag: "class"}
		r.Set("II:S", graph.Int_value(count))
		r.Set("II:D", graph.Int_value(durability))
		r.Set("II:B", graph.Int_value(0))
		r.Set("II:DP", graph.Ref_value(dp))
		return r
	}

	records := []*graph.Record{
		lidp(100, `grenades\flashbang`),
		instance(200, 100, 6, 0),
		lidp(101, `devices\fishingrod`),
		// no instance for 101: defaults apply
		lidp(102, `messages\note_to_self`),
		lidp(103, `grenades\Flashbang`), // same item, different case
		instance(201, 103, 2, 0),
		lidp(104, `currency\stygiancoin`),
		instance(202, 104, 915, 0),
	}
	return graph.Build(records)
}

func Test_inventory_items(t *testing.T) {
	items := Inventory_items(inventory_graph())
	if len(items) != 4 {
		t.Fatalf("got %d items: %+v", len(items), items)
	}

	by_path := map[string]InventoryItem{}
	for _, item := range items {
		by_path[item.Path] = item
	}

	flash := by_path[`grenades\flashbang`]
	if flash.Count != 6 || flash.Category != "Grenades" || flash.Name != "Flashbang" {
		t.Errorf("flashbang: got %+v", flash)
	}

	// No instance record: the stack still exists with count 1.
	rod := by_path[`devices\fishingrod`]
	if rod.Count != 1 || rod.Name != "Fishing Rod" {
		t.Errorf("fishing rod: got %+v", rod)
	}

	if _, found := by_path[`messages\note_to_self`]; found {
		t.Error("message item leaked into the inventory")
	}
}

func Test_summarize_inventory(t *testing.T) {
	summary := Summarize_inventory(Inventory_items(inventory_graph()))

	if summary.Total_stacks != 4 {
		t.Errorf("total stacks: got %d, want 4", summary.Total_stacks)
	}
	if summary.Total_items != 3 {
		t.Errorf("total items: got %d, want 3", summary.Total_items)
	}

	var flash MergedItem
	for _, item := range summary.Items {
		if item.Name == "Flashbang" {
			flash = item
		}
	}
	if flash.Count != 8 || flash.Stacks != 2 {
		t.Errorf("merged flashbang: got %+v", flash)
	}
	if len(flash.Stack_counts) != 2 {
		t.Errorf("stack counts: got %v", flash.Stack_counts)
	}
}

func Test_currency(t *testing.T) {
	items := Inventory_items(inventory_graph())
	coins, credits := Currency(items)
	if coins != 915 {
		t.Errorf("coins: got %d, want 915", coins)
	}
	if credits != -1 {
		t.Errorf("credits: got %d, want -1 (absent)", credits)
	}
}

// crafted_graph builds two item definitions (one weapon) and the IIDP link
// chain carrying instance state to the weapon.
func crafted_graph() *graph.Graph {
	damage := &graph.Record{ID: 0, Name: "DR", Tag: "class_id"}
	damage.Set("L", graph.Int_value(21))
	damage.Set("U", graph.Int_value(35))

	knife := &graph.Record{ID: 300, Name: "WI", Tag: "class"}
	knife.Set("I:N", graph.Wrapped_value(graph.Str_value("Serrated Tungsten Combat Knife")))
	knife.Set("WI:AP", graph.Int_value(9))
	knife.Set("WI:CSC", graph.Value{Kind: graph.K_FLOAT, Float64: 12})
	knife.Set("WI:CDB", graph.Value{Kind: graph.K_FLOAT, Float64: 125})
	knife.Set("WI:D:0", graph.Value{Kind: graph.K_INLINE, Rec: damage})

	vest := &graph.Record{ID: 301, Name: "AI", Tag: "class"}
	vest.Set("I:N", graph.Wrapped_value(graph.Str_value("Infused Siphoner Leather Armor")))

	note := &graph.Record{ID: 302, Name: "I", Tag: "class"}
	note.Set("I:N", graph.Wrapped_value(graph.Str_value("This knife looks sharp.")))

	iidp := &graph.Record{ID: 310, Name: "IIDP", Tag: "class"}
	iidp.Set("IIDP:D", graph.Ref_value(300))

	inst := &graph.Record{ID: 311, Name: "II", Tag: "class"}
	inst.Set("II:S", graph.Int_value(1))
	inst.Set("II:D", graph.Int_value(870))
	inst.Set("II:B", graph.Int_value(0))
	inst.Set("II:DP", graph.Ref_value(310))

	return graph.Build([]*graph.Record{damage, knife, vest, note, iidp, inst})
}

func Test_crafted_items(t *testing.T) {
	items := Crafted_items(crafted_graph())
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}

	var knife CraftedItem
	for _, item := range items {
		if item.Weapon != nil {
			knife = item
		}
	}
	if knife.Name != "Serrated Tungsten Combat Knife" {
		t.Fatalf("weapon: got %+v", knife)
	}
	if knife.Weapon.Damage_min != 21 || knife.Weapon.Damage_max != 35 {
		t.Errorf("damage: got %+v", knife.Weapon)
	}
	if knife.Weapon.AP_cost != 9 {
		t.Errorf("ap: got %d", knife.Weapon.AP_cost)
	}
	if knife.Durability != 870 {
		t.Errorf("durability via IIDP join: got %d", knife.Durability)
	}
}

func Test_classify_gear(t *testing.T) {
	crafted := Crafted_items(crafted_graph())
	eq := Classify_gear(crafted, nil)

	if len(eq.Character_gear) != 2 {
		t.Fatalf("got %d gear items: %+v", len(eq.Character_gear), eq.Character_gear)
	}

	by_category := map[string]GearItem{}
	for _, gear := range eq.Character_gear {
		by_category[gear.Category] = gear
	}
	if by_category["Weapons"].Name != "Serrated Tungsten Combat Knife" {
		t.Errorf("weapon slot: got %+v", by_category["Weapons"])
	}
	if by_category["Armor"].Name != "Infused Siphoner Leather Armor" {
		t.Errorf("armor slot: got %+v", by_category["Armor"])
	}
	// The description string ("This knife...") must not classify as gear.
}

func Test_classify_gear_utility_slots(t *testing.T) {
	grenade := func(path string, count int) InventoryItem {
		return InventoryItem{Path: path, Name: path, Category: "Grenades", Count: count}
	}
	inv := []InventoryItem{
		grenade(`grenades\frag1`, 5),
		grenade(`grenades\he2`, 3),
		{Path: `devices\lockpick`, Name: "Lockpick", Category: "Devices", Count: 1},
	}

	eq := Classify_gear(nil, inv)
	if len(eq.Utility_slots) != 2 {
		t.Fatalf("got %d utility slots", len(eq.Utility_slots))
	}

	// More than four grenade stacks: only the first four are belt slots.
	inv = []InventoryItem{}
	for i := 0; i < 6; i++ {
		inv = append(inv, grenade(`grenades\frag1`, i+1))
	}
	eq = Classify_gear(nil, inv)
	if len(eq.Utility_slots) != 4 {
		t.Errorf("got %d utility slots, want 4", len(eq.Utility_slots))
	}
}

func Test_mechanics(t *testing.T) {
	if Max_skill_per_level(8) != 50 {
		t.Errorf("max per skill at 8: got %d", Max_skill_per_level(8))
	}
	if Total_skill_points(8) != 440 {
		t.Errorf("total points at 8: got %d", Total_skill_points(8))
	}
	// The pool grows by 40 per level.
	if Total_skill_points(9)-Total_skill_points(8) != 40 {
		t.Error("per-level point delta is not 40")
	}

	if Has_expedition(23) {
		t.Error("23 skills misread as Expedition")
	}
	if !Has_expedition(24) {
		t.Error("24 skills not recognized as Expedition")
	}

	if Xp_needed(5, "classic") != 5000 {
		t.Errorf("classic xp: got %d", Xp_needed(5, "classic"))
	}
	if Xp_needed(5, "oddity") != 12 {
		t.Errorf("oddity xp: got %d", Xp_needed(5, "oddity"))
	}
	if Xp_needed(20, "oddity") != 30 {
		t.Errorf("oddity xp cap: got %d", Xp_needed(20, "oddity"))
	}
}

func Test_detect_xp_system(t *testing.T) {
	g := player_graph()
	system, certain := Detect_xp_system(g)
	if system != "classic" || certain {
		t.Errorf("got %q certain=%v, want uncertain classic", system, certain)
	}

	oddity := &graph.Record{ID: 900, Name: "O", Tag: "class"}
	oddity.Set("O:T", graph.Wrapped_value(graph.Str_value("Oddity.MutatedDogPelt")))
	g = graph.Build([]*graph.Record{oddity})

	system, certain = Detect_xp_system(g)
	if system != "oddity" || !certain {
		t.Errorf("got %q certain=%v, want certain oddity", system, certain)
	}
}
