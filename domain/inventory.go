package domain

import (
	"sort"
	"strings"

	"underdig/graph"
	"underdig/tables"
)

// InventoryItem is a stack in the character's inventory, identified by its
// game data path (e.g. `grenades\flashbang`).
type InventoryItem struct {
	ID         int64
	Path       string
	Name       string
	Category   string
	Count      int
	Durability int
	Battery    int
}

// ItemInstance is the runtime state of one item stack.
type ItemInstance struct {
	Count       int
	Durability  int
	Battery     int
	Max_battery int
}

// WeaponStats are the combat numbers carried by crafted weapons.
type WeaponStats struct {
	Damage_min  int
	Damage_max  int
	AP_cost     int
	Crit_chance float64
	Crit_damage float64
}

// CraftedItem is a full item definition with a display name, typically
// crafted or unique gear.
type CraftedItem struct {
	ID         int64
	Name       string
	Value      float64
	Weight     float64
	Equipped   bool
	Weapon     *WeaponStats
	Durability int
	Battery    int
}

// GearItem is a classified piece of equipment.
type GearItem struct {
	Name     string
	Category string
	ID       int64
	Value    float64
	Weight   float64
	Weapon   *WeaponStats
}

// Equipment is what the character wears and carries in the utility belt.
type Equipment struct {
	Character_gear []GearItem
	Utility_slots  []InventoryItem
}

// MergedItem is an inventory stack after merging duplicates by path.
type MergedItem struct {
	Path         string
	Name         string
	Category     string
	Count        int
	Stacks       int
	Stack_counts []int
}

// InventorySummary groups merged inventory stacks by category.
type InventorySummary struct {
	Items        []MergedItem
	By_category  map[string][]MergedItem
	Total_items  int
	Total_stacks int
}

// Item_instances collects runtime item state, keyed by the data provider
// record the instance points at through II:DP.
func Item_instances(g *graph.Graph) map[int64]ItemInstance {
	instances := map[int64]ItemInstance{}

	for _, rec := range g.Records() {
		dp, ok := rec.Member("II:DP")
		if !ok || dp.Kind != graph.K_REF {
			continue
		}
		if _, ok := rec.Member("II:S"); !ok {
			continue
		}

		var inst ItemInstance
		inst.Count = 1
		if n, ok := g.Member_int(rec, "II:S"); ok {
			inst.Count = n
		}
		inst.Durability, _ = g.Member_int(rec, "II:D")
		inst.Battery, _ = g.Member_int(rec, "II:B")
		inst.Max_battery, _ = g.Member_int(rec, "II:MB")
		instances[dp.Ref] = inst
	}

	return instances
}

// Inventory_items collects path-identified inventory stacks from LIDP
// records, joined with their instance state.  Message items (the in-game
// notes under messages\) are not inventory and are skipped.
func Inventory_items(g *graph.Graph) []InventoryItem {
	instances := Item_instances(g)

	items := []InventoryItem{}
	for _, rec := range g.Records() {
		if !strings.HasPrefix(rec.Name, "LIDP") {
			continue
		}
		path, ok := g.Member_str(rec, "LIDP:P")
		if !ok || !strings.Contains(path, `\`) {
			continue
		}
		if strings.HasPrefix(path, `messages\`) {
			continue
		}

		item := InventoryItem{
			ID:       rec.ID,
			Path:     path,
			Name:     tables.Item_display_name(path),
			Category: tables.Item_category(strings.SplitN(path, `\`, 2)[0]),
			Count:    1,
		}
		if inst, ok := instances[rec.ID]; ok {
			item.Count = inst.Count
			item.Durability = inst.Durability
			item.Battery = inst.Battery
		}
		items = append(items, item)
	}

	return items
}

func member_float(g *graph.Graph, rec *graph.Record, key string) float64 {
	v, ok := g.Member(rec, key)
	if !ok {
		return 0
	}
	if v.Kind == graph.K_FLOAT {
		return v.Float64
	}
	if n, ok := v.Int(); ok {
		return float64(n)
	}
	return 0
}

// Crafted_items collects full item definitions.  An item definition is any
// record carrying a wrapped I:N display name; instance state arrives through
// the IIDP record that links instances to definitions.
func Crafted_items(g *graph.Graph) []CraftedItem {
	instances := Item_instances(g)

	items := []CraftedItem{}
	index_by_id := map[int64]int{}

	for _, rec := range g.Records() {
		raw, ok := rec.Member("I:N")
		if !ok || raw.Kind != graph.K_WRAPPED {
			continue
		}
		name, ok := g.Member_str(rec, "I:N")
		if !ok || name == "" {
			continue
		}

		item := CraftedItem{
			ID:     rec.ID,
			Name:   name,
			Value:  member_float(g, rec, "I:CV"),
			Weight: member_float(g, rec, "I:W"),
		}
		if equipped, ok := g.Member(rec, "EI:E"); ok {
			item.Equipped, _ = equipped.Bool_value()
		}
		if _, ok := rec.Member("WI:AP"); ok {
			item.Weapon = weapon_stats(g, rec)
		}

		index_by_id[rec.ID] = len(items)
		items = append(items, item)
	}

	// IIDP records reference a definition; instances reference the IIDP.
	for _, rec := range g.Records() {
		def, ok := rec.Member("IIDP:D")
		if !ok || def.Kind != graph.K_REF {
			continue
		}
		inst, ok := instances[rec.ID]
		if !ok {
			continue
		}
		if i, ok := index_by_id[def.Ref]; ok {
			items[i].Durability = inst.Durability
			items[i].Battery = inst.Battery
		}
	}

	return items
}

func weapon_stats(g *graph.Graph, rec *graph.Record) *WeaponStats {
	w := &WeaponStats{}
	w.AP_cost, _ = g.Member_int(rec, "WI:AP")
	w.Crit_chance = member_float(g, rec, "WI:CSC")
	w.Crit_damage = member_float(g, rec, "WI:CDB")

	// Damage range lives in an inline struct with L and U members.
	if damage := g.Member_record(rec, "WI:D:0"); damage != nil {
		w.Damage_min, _ = g.Member_int(damage, "L")
		w.Damage_max, _ = g.Member_int(damage, "U")
	}
	return w
}

// Gear classification keywords, checked against lowercased display names.
var (
	glove_keywords  = []string{"glove"}
	boot_keywords   = []string{"boot", "tabi", "shoe", "sandal"}
	head_keywords   = []string{"balaclava", "helmet", "goggles", "mask", "hood", "cap"}
	shield_keywords = []string{"shield", "emitter"}
	armor_keywords  = []string{"overcoat", "armor", "vest", "jacket", "suit", "robe"}

	// Item descriptions leak into the name pool; they read like sentences.
	description_prefixes = []string{"this ", "these ", "a ", "an "}
)

func contains_any(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Classify_gear sorts crafted items into worn equipment slots and picks the
// utility belt's grenades out of the inventory.  Grenade stacks can't be
// told apart from belt slots in the save, so four or fewer stacks are all
// treated as belt slots and larger collections contribute their first four.
func Classify_gear(crafted []CraftedItem, inventory []InventoryItem) Equipment {
	eq := Equipment{Character_gear: []GearItem{}, Utility_slots: []InventoryItem{}}

	for _, item := range crafted {
		name := strings.ToLower(item.Name)
		if len(item.Name) < 3 {
			continue
		}
		skip := false
		for _, prefix := range description_prefixes {
			if strings.HasPrefix(name, prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		category := ""
		switch {
		case item.Weapon != nil:
			category = "Weapons"
		case contains_any(name, glove_keywords):
			category = "Gloves"
		case contains_any(name, boot_keywords):
			category = "Boots"
		case contains_any(name, head_keywords):
			category = "Head"
		case contains_any(name, shield_keywords):
			category = "Shield"
		case contains_any(name, armor_keywords):
			category = "Armor"
		default:
			continue
		}

		eq.Character_gear = append(eq.Character_gear, GearItem{
			Name:     item.Name,
			Category: category,
			ID:       item.ID,
			Value:    item.Value,
			Weight:   item.Weight,
			Weapon:   item.Weapon,
		})
	}

	grenades := []InventoryItem{}
	for _, item := range inventory {
		if strings.EqualFold(item.Category, "grenades") {
			grenades = append(grenades, item)
		}
	}
	if len(grenades) > 4 {
		grenades = grenades[:4]
	}
	eq.Utility_slots = grenades

	return eq
}

// Summarize_inventory merges stacks sharing a path (case-insensitively),
// sorts them and groups them by category.
func Summarize_inventory(items []InventoryItem) InventorySummary {
	order := []string{}
	grouped := map[string][]InventoryItem{}
	for _, item := range items {
		key := strings.ToLower(item.Path)
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], item)
	}

	merged := []MergedItem{}
	for _, key := range order {
		stacks := grouped[key]
		total := 0
		counts := []int{}
		for _, stack := range stacks {
			total += stack.Count
			counts = append(counts, stack.Count)
		}
		m := MergedItem{
			Path:     stacks[0].Path,
			Name:     stacks[0].Name,
			Category: stacks[0].Category,
			Count:    total,
			Stacks:   len(stacks),
		}
		if len(stacks) > 1 {
			m.Stack_counts = counts
		}
		merged = append(merged, m)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Category != merged[j].Category {
			return merged[i].Category < merged[j].Category
		}
		return merged[i].Name < merged[j].Name
	})

	by_category := map[string][]MergedItem{}
	for _, item := range merged {
		by_category[item.Category] = append(by_category[item.Category], item)
	}

	return InventorySummary{
		Items:        merged,
		By_category:  by_category,
		Total_items:  len(merged),
		Total_stacks: len(items),
	}
}

// Currency reads the two currency stack counts out of the inventory.
// Missing currencies report -1 so callers can tell "none found" from an
// empty stack.
func Currency(items []InventoryItem) (coins, credits int) {
	coins, credits = -1, -1
	for _, item := range items {
		path := strings.ToLower(item.Path)
		if strings.Contains(path, "stygiancoin") {
			coins = item.Count
		} else if strings.Contains(path, "sgscredits") {
			credits = item.Count
		}
	}
	return coins, credits
}
