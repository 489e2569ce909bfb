package main

// savefile viewer/editor for Underrail
//
// example usage:
//
// underdig load "C:\Underrail\Saves\quick"
// underdig view
// underdig dump
// underdig set skill Guns 150
// underdig set skill temporal 80
// underdig set attribute str 10
// underdig changes
// underdig apply
// underdig watch

import (
	"bufio"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"

	"underdig/container"
	"underdig/domain"
	"underdig/edit"
	"underdig/graph"
	"underdig/ufe"
)

// Evil global variables
var g_stash_filename = "underdig.tmp"

var (
	flag_dir         = pflag.String("dir", "", "save file or directory (overrides underdig.ini)")
	flag_ufe         = pflag.String("ufe", "", "path to the UFE converter binary")
	flag_timeout     = pflag.Int("timeout", 0, "converter timeout in seconds")
	flag_legacy      = pflag.Bool("legacy", false, "scan raw save bytes instead of running the converter")
	flag_no_validate = pflag.Bool("no-validate", false, "skip validation after patching a save")
	flag_verbose     = pflag.BoolP("verbose", "v", false, "debug logging")
)

type config struct {
	dir      string
	ufe_path string
	timeout  time.Duration
}

// get_config merges underdig.ini with command-line flags; flags win.
func get_config() config {
	c := config{ufe_path: "UFE.exe", timeout: ufe.Default_timeout}

	cfg, err := ini.Load("underdig.ini")
	if err == nil {
		// Classic read of values, default section can be represented as empty string
		section := cfg.Section("")
		if dir := section.Key("dir").String(); dir != "" {
			c.dir = dir
		}
		if path := section.Key("ufe").String(); path != "" {
			c.ufe_path = path
		}
		if secs, err := section.Key("timeout_seconds").Int(); err == nil && secs > 0 {
			c.timeout = time.Duration(secs) * time.Second
		}
	}

	if *flag_dir != "" {
		c.dir = *flag_dir
	}
	if *flag_ufe != "" {
		c.ufe_path = *flag_ufe
	}
	if *flag_timeout > 0 {
		c.timeout = time.Duration(*flag_timeout) * time.Second
	}
	if c.dir == "" {
		c.dir, _ = os.Getwd()
	}
	return c
}

// smash smashes "funny characters" (which includes anything that's remotely tricky to type into a command line) in a string into the '_' character
func smash(in string) string {
	out := ""
	for _, c := range in {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			out += string(c)
		} else {
			out += "_"
		}
	}
	return out
}

// string matching functions, in strictly increasing order of desperation
var fuzzy = []func(input string, candidate string) bool{
	func(i string, c string) bool { return i == c },
	func(i string, c string) bool { return strings.EqualFold(i, c) },
	func(i string, c string) bool { return smash(strings.ToUpper(i)) == smash(strings.ToUpper(c)) },
	func(i string, c string) bool {
		return strings.HasPrefix(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
	func(i string, c string) bool {
		return strings.Contains(smash(strings.ToUpper(c)), smash(strings.ToUpper(i)))
	},
}

// fuzzy_reverse_lookup looks up "backwards" in a translation map
//
// Returns the key whose value matched and the value itself (not necessarily
// equal to "to" due to fuzzy matching).
func fuzzy_reverse_lookup[K comparable](trans map[K]string, to string, what string) (K, string, error) {
	var K0 K

	for _, match := range fuzzy {
		matches := []K{}
		names := []string{}
		for k, v := range trans {
			if match(to, v) {
				matches = append(matches, k)
				names = append(names, v)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			sort.Strings(names)
			return K0, "", errors.New(fmt.Sprint("Ambiguous argument: ", to, " could be anything from {", strings.Join(names, ", "), "}"))
		}

		return matches[0], names[0], nil
	}

	return K0, "", errors.New(to + " could not be matched to a valid " + what)
}

func main() {
	pflag.Parse()

	level := slog.LevelInfo
	if *flag_verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := main2()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main2() error {
	args := pflag.Args()

	arg := "help"
	if len(args) < 1 {
		fmt.Println("No args detected - falling back to \"help\", since you clearly need it...")
	} else {
		arg = args[0]
	}

	conf := get_config()
	tool := &ufe.Tool{Path: conf.ufe_path, Timeout: conf.timeout}

	switch arg {
	case "help":
		help_text := []string{
			"Underrail Save File Editor",
			"",
			"Commands:",
			"help: display this text",
			"load (path): load a save file (or directory containing global.dat)",
			"view: show the character sheet",
			"dump: show everything - character, inventory, equipment",
			"set skill (name) (value): set a skill's base value",
			"set attribute (name) (value): set an attribute's base value",
			"changes: list pending edits",
			"apply: patch pending edits into the save file",
			"discard: throw pending edits away",
			"watch: reload and re-display the save whenever the game writes it",
			"",
			"Notes:",
			"   It is usually not necessary to type the full name of something",
			"e.g. \"temp\" will be recognized as \"Temporal Manipulation\".",
			"   Effective values follow edits, keeping whatever bonus the",
			"character already had.  \"set skill Guns 150:160\" overrides that.",
			"   --legacy views a save by scanning its bytes, without the converter.",
		}
		for _, ht := range help_text {
			fmt.Println(ht)
		}

	case "load":
		path := conf.dir
		if len(args) > 1 {
			path = args[1]
		}
		save_path, err := ufe.Resolve_save_path(path)
		if err != nil {
			return err
		}

		if *flag_legacy {
			return view_legacy(save_path)
		}

		records, err := export_records(tool, save_path)
		if err != nil {
			return err
		}
		fmt.Println("Loaded", save_path)
		return stash(stash_data{Filename: save_path, Records: records})

	case "view":
		if *flag_legacy {
			save_path, err := ufe.Resolve_save_path(conf.dir)
			if err != nil {
				return err
			}
			return view_legacy(save_path)
		}

		st, err := retrieve()
		if err != nil {
			return err
		}
		print_character(graph.Build(st.Records))

	case "dump":
		st, err := retrieve()
		if err != nil {
			return err
		}
		g := graph.Build(st.Records)
		print_character(g)
		print_inventory(g)
		print_equipment(g)

	case "set":
		if len(args) < 4 {
			return errors.New("Usage: set (skill|attribute) (name) (value)")
		}

		st, err := retrieve()
		if err != nil {
			return err
		}
		g := graph.Build(st.Records)
		session := edit.Resume_session(st.Filename, g, st.Changes)

		matched, err := set_value(session, g, args[1], args[2], args[3])
		if err != nil {
			return err
		}

		fmt.Println(matched, "set to", args[3])
		st.Changes = session.Changes()
		return stash(st)

	case "changes":
		st, err := retrieve()
		if err != nil {
			return err
		}
		if len(st.Changes) == 0 {
			fmt.Println("No pending changes")
			return nil
		}
		print_changes(graph.Build(st.Records), st.Changes)

	case "apply":
		st, err := retrieve()
		if err != nil {
			return err
		}
		g := graph.Build(st.Records)
		session := edit.Resume_session(st.Filename, g, st.Changes)

		slog.Debug("patching save", "path", st.Filename, "changes", len(st.Changes))
		err = session.Apply(context.Background(), tool, !*flag_no_validate)
		if err != nil {
			return err
		}
		fmt.Println("Patched", st.Filename, "(", len(st.Changes), "changes )")

		err = os.Remove(g_stash_filename)
		if err != nil {
			return err
		}
		fmt.Println("Temporary data cleaned up")

	case "discard":
		st, err := retrieve()
		if err != nil {
			return err
		}
		session := edit.Resume_session(st.Filename, graph.Build(st.Records), st.Changes)
		session.Discard()

		err = os.Remove(g_stash_filename)
		if err != nil {
			return err
		}
		fmt.Println("Discarded", len(st.Changes), "pending changes")

	case "watch":
		save_path, err := ufe.Resolve_save_path(conf.dir)
		if err != nil {
			return err
		}
		return watch(tool, save_path)

	default:
		return errors.New("Unknown command " + arg + ".  Try \"help\".")
	}

	return nil
}

func export_records(tool *ufe.Tool, save_path string) ([]*graph.Record, error) {
	json_path, err := tool.Export(context.Background(), save_path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(json_path)
	if err != nil {
		return nil, err
	}
	records, err := graph.Decode_records(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	os.Remove(json_path)

	slog.Debug("decoded converter export", "records", len(records))
	return records, nil
}

// === Stash ===
//
// Commands run as separate processes, so loaded state is gob-encoded to a
// temp file between invocations.

type stash_data struct {
	Filename string
	Records  []*graph.Record
	Changes  []edit.Change
}

func stash(st stash_data) error {
	f, err := os.Create(g_stash_filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	err = gob.NewEncoder(w).Encode(st)
	if err != nil {
		return err
	}
	w.Flush()
	return f.Sync()
}

func retrieve() (stash_data, error) {
	st := stash_data{}

	f, err := os.Open(g_stash_filename)
	if err != nil {
		return st, errors.New("No save loaded.  \"load\" one first.")
	}
	defer f.Close()

	err = gob.NewDecoder(bufio.NewReader(f)).Decode(&st)
	return st, err
}

// === Editing ===

func set_value(session *edit.Session, g *graph.Graph, entity, name, to string) (string, error) {
	// "150" sets base and carries the bonus over; "150:160" sets both.
	var base int
	var effective *int
	var err error

	base_str, eff_str, has_eff := strings.Cut(to, ":")
	base, err = strconv.Atoi(base_str)
	if err != nil {
		return "", err
	}
	if base < 0 {
		return "", errors.New("Negative values are not allowed")
	}
	if has_eff {
		n, err := strconv.Atoi(eff_str)
		if err != nil {
			return "", err
		}
		effective = &n
	}

	src := domain.New_graph_source(g)

	switch entity {
	case "skill":
		skills := src.Skills()
		trans := map[int]string{}
		for i, s := range skills {
			trans[i] = s.Name
		}
		index, matched, err := fuzzy_reverse_lookup(trans, name, "skill")
		if err != nil {
			return "", err
		}
		if !session.Set_skill_value(index, base, effective) {
			return "", errors.New("Could not write skill " + matched)
		}
		return matched, nil

	case "attribute", "stat":
		attrs := src.Attributes()
		trans := map[int]string{}
		for i, a := range attrs {
			trans[i] = a.Name
		}
		index, matched, err := fuzzy_reverse_lookup(trans, name, "attribute")
		if err != nil {
			return "", err
		}
		if !session.Set_attribute_value(index, base, effective) {
			return "", errors.New("Could not write attribute " + matched)
		}
		return matched, nil
	}

	return "", errors.New("Don't know how to set a " + entity + ".  Try \"skill\" or \"attribute\".")
}

func print_changes(g *graph.Graph, changes []edit.Change) {
	src := domain.New_graph_source(g)
	skills := src.Skills()
	attrs := src.Attributes()

	for _, c := range changes {
		name := fmt.Sprintf("%s %d", c.Entity, c.Index)
		if c.Entity == "skill" && c.Index < len(skills) {
			name = skills[c.Index].Name
		} else if c.Entity == "attribute" && c.Index < len(attrs) {
			name = attrs[c.Index].Name
		}
		fmt.Printf("%s: %d -> %d (effective %d -> %d)\n",
			name, c.Old_base, c.New_base, c.Old_effective, c.New_effective)
	}
}

// === Display ===

var category_order = []string{"Offense", "Defense", "Subterfuge", "Technology", "Psi", "Social"}

func print_source(src domain.Source) {
	if name, ok := src.Character_name(); ok {
		fmt.Println("Character:", name)
	}
	if level, ok := src.Character_level(); ok {
		fmt.Println("Level:", level,
			"( max per skill", domain.Max_skill_per_level(level),
			"/ total skill points", domain.Total_skill_points(level), ")")
	}
	if v, ok := src.Game_version(); ok {
		fmt.Println("Game version:", v)
	}

	attrs := src.Attributes()
	if len(attrs) > 0 {
		fmt.Println()
		fmt.Println("Attributes:")
		for _, a := range attrs {
			fmt.Printf("   %-14s %3d (%d)\n", a.Name, a.Base, a.Effective)
		}
	}

	skills := src.Skills()
	if len(skills) > 0 {
		if domain.Has_expedition(len(skills)) {
			fmt.Println()
			fmt.Println("Expedition DLC detected")
		}
		by_category := map[string][]domain.Skill{}
		for _, s := range skills {
			by_category[s.Category] = append(by_category[s.Category], s)
		}
		for _, category := range category_order {
			group := by_category[category]
			if len(group) == 0 {
				continue
			}
			fmt.Println()
			fmt.Println(category + ":")
			for _, s := range group {
				fmt.Printf("   %-22s %3d (%d)\n", s.Name, s.Base, s.Effective)
			}
		}
	}

	feats := src.Feats()
	if len(feats) > 0 {
		fmt.Println()
		fmt.Println("Feats:")
		for _, f := range feats {
			fmt.Println("  ", f.Name)
		}
	}
}

func print_character(g *graph.Graph) {
	src := domain.New_graph_source(g)
	print_source(src)

	system, certain := domain.Detect_xp_system(g)
	qualifier := ""
	if !certain {
		qualifier = " (probably)"
	}
	fmt.Println()
	fmt.Println("XP system:", system+qualifier)
	if level, ok := src.Character_level(); ok {
		fmt.Println("XP to next level:", domain.Xp_needed(level, system))
	}

	items := domain.Inventory_items(g)
	coins, credits := domain.Currency(items)
	if coins >= 0 {
		fmt.Println("Stygian coins:", coins)
	}
	if credits >= 0 {
		fmt.Println("SGS credits:", credits)
	}
}

// view_legacy shows what the byte scanner can recover without the converter.
func view_legacy(save_path string) error {
	data, err := os.ReadFile(save_path)
	if err != nil {
		return err
	}
	if container.Is_packed(data) {
		data, err = container.Unpack(data)
		if err != nil {
			return err
		}
		slog.Debug("unpacked save", "bytes", len(data))
	}

	src := domain.New_scan_source(data)
	print_source(src)

	if xp, ok := src.XP(); ok {
		fmt.Println()
		fmt.Println("XP:", xp)
	}
	if coins, credits, ok := src.Currency(); ok {
		fmt.Println("Stygian coins:", coins)
		fmt.Println("SGS credits:", credits)
	}
	return nil
}

func print_inventory(g *graph.Graph) {
	summary := domain.Summarize_inventory(domain.Inventory_items(g))
	if summary.Total_items == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Inventory (%d item types, %d stacks):\n", summary.Total_items, summary.Total_stacks)

	categories := []string{}
	for category := range summary.By_category {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Println()
		fmt.Println(category + ":")
		for _, item := range summary.By_category[category] {
			stacks := ""
			if item.Stacks > 1 {
				stacks = fmt.Sprintf(" (in %d stacks)", item.Stacks)
			}
			fmt.Printf("   %4d x %s%s\n", item.Count, item.Name, stacks)
		}
	}
}

func print_equipment(g *graph.Graph) {
	eq := domain.Classify_gear(domain.Crafted_items(g), domain.Inventory_items(g))
	if len(eq.Character_gear) == 0 && len(eq.Utility_slots) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Equipment:")
	for _, gear := range eq.Character_gear {
		fmt.Printf("   %-8s %s\n", gear.Category+":", gear.Name)
		if gear.Weapon != nil {
			fmt.Printf("            %d-%d damage, %d AP, %.0f%% crit (+%.0f%%)\n",
				gear.Weapon.Damage_min, gear.Weapon.Damage_max,
				gear.Weapon.AP_cost, gear.Weapon.Crit_chance, gear.Weapon.Crit_damage)
		}
	}
	if len(eq.Utility_slots) > 0 {
		fmt.Println()
		fmt.Println("Utility slots:")
		for _, item := range eq.Utility_slots {
			fmt.Printf("   %4d x %s\n", item.Count, item.Name)
		}
	}
}

// watch re-displays the character sheet whenever the game rewrites the save.
func watch(tool *ufe.Tool, save_path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	loader := ufe.New_loader(tool)
	dir := filepath.Dir(save_path)
	target := filepath.Base(save_path)

	err = watcher.Add(dir)
	if err != nil {
		return err
	}
	fmt.Println("Watching", save_path, "- Ctrl+C to stop")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("save changed", "event", event.Op.String())

			// The game writes the file in bursts; give it a moment.
			time.Sleep(500 * time.Millisecond)

			loader.Invalidate(save_path)
			g, err := loader.Load(context.Background(), save_path)
			if err != nil {
				slog.Error("reload failed", "error", err)
				continue
			}
			fmt.Println()
			fmt.Println("=== Save updated", time.Now().Format("15:04:05"), "===")
			print_character(g)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		}
	}
}
