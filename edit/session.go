package edit

// An editing session over one save file.  The graph is mutated in memory;
// Apply re-encodes it next to the save and hands it to the converter to
// patch back in.  A session moves Loaded -> Mutated -> Applied or Discarded
// and refuses edits after it finishes.

import (
	"context"
	"fmt"
	"io"
	"os"

	"underdig/graph"
	"underdig/ufe"
)

type State int

const (
	S_LOADED State = iota
	S_MUTATED
	S_APPLIED
	S_DISCARDED
)

func (s State) String() string {
	switch s {
	case S_LOADED:
		return "loaded"
	case S_MUTATED:
		return "mutated"
	case S_APPLIED:
		return "applied"
	case S_DISCARDED:
		return "discarded"
	}
	return "unknown"
}

// Change records one applied edit for display and undo bookkeeping.
type Change struct {
	Entity        string // "skill" or "attribute"
	Index         int
	Old_base      int
	New_base      int
	Old_effective int
	New_effective int
}

type Session struct {
	Save_path string
	G         *graph.Graph

	state   State
	changes []Change
}

func New_session(save_path string, g *graph.Graph) *Session {
	return &Session{Save_path: save_path, G: g, state: S_LOADED}
}

// Resume_session rebuilds a session from stashed state, e.g. between CLI
// invocations.  The graph must already carry the stashed edits.
func Resume_session(save_path string, g *graph.Graph, changes []Change) *Session {
	state := S_LOADED
	if len(changes) > 0 {
		state = S_MUTATED
	}
	return &Session{Save_path: save_path, G: g, state: state, changes: changes}
}

func (s *Session) State() State      { return s.state }
func (s *Session) Changes() []Change { return s.changes }
func (s *Session) Has_changes() bool { return len(s.changes) > 0 }

func (s *Session) open() bool {
	return s.state == S_LOADED || s.state == S_MUTATED
}

func (s *Session) element(container_key, prefix string, index int) *graph.Record {
	player := s.G.Player()
	if player == nil {
		return nil
	}
	container := s.G.Member_record(player, container_key)
	if container == nil {
		return nil
	}
	return s.G.Element(container, prefix, index)
}

// set_values rewrites a stat record's base and effective values.  When the
// caller doesn't give an effective value the old bonus (effective minus
// base) is carried over; a bonus that would push the result under the floor
// collapses to the bare base.
func (s *Session) set_values(rec *graph.Record, base int, effective *int, floor int) (int, int, int, int) {
	old_base, _ := s.G.Member_int(rec, "S4:V")
	old_effective, _ := s.G.Member_int(rec, "S4:MV")

	new_effective := 0
	if effective != nil {
		new_effective = *effective
	} else {
		new_effective = base + (old_effective - old_base)
		if new_effective < floor {
			new_effective = base
		}
	}

	rec.Set("S4:V", graph.Int_value(base))
	rec.Set("S4:MV", graph.Int_value(new_effective))

	return old_base, old_effective, base, new_effective
}

// Set_skill_value sets the skill at index to a new base value.  A nil
// effective preserves the old bonus.  Returns false, leaving the graph
// untouched, if the index doesn't resolve or the session is finished.
func (s *Session) Set_skill_value(index, base int, effective *int) bool {
	if !s.open() {
		return false
	}
	rec := s.element("C1:S", "S3:S", index)
	if rec == nil {
		return false
	}

	ob, oe, nb, ne := s.set_values(rec, base, effective, 0)
	s.changes = append(s.changes, Change{
		Entity: "skill", Index: index,
		Old_base: ob, New_base: nb,
		Old_effective: oe, New_effective: ne,
	})
	s.state = S_MUTATED
	return true
}

// Set_attribute_value is Set_skill_value for base attributes.  Attributes
// never go under 1 in game, so that is the bonus floor.
func (s *Session) Set_attribute_value(index, base int, effective *int) bool {
	if !s.open() {
		return false
	}
	rec := s.element("C1:BA", "BA3:BA", index)
	if rec == nil {
		return false
	}

	ob, oe, nb, ne := s.set_values(rec, base, effective, 1)
	s.changes = append(s.changes, Change{
		Entity: "attribute", Index: index,
		Old_base: ob, New_base: nb,
		Old_effective: oe, New_effective: ne,
	})
	s.state = S_MUTATED
	return true
}

// backup copies the save aside once, before the first patch touches it.
func (s *Session) backup() error {
	backup_path := s.Save_path + ".OLD"
	if _, err := os.Stat(backup_path); err == nil {
		return nil
	}

	src, err := os.Open(s.Save_path)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backup_path)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("backup: %w", err)
	}
	return dst.Close()
}

// Apply writes the mutated graph out as JSON next to the save and runs the
// converter's patch over it.  The JSON is removed after a successful patch.
func (s *Session) Apply(ctx context.Context, tool *ufe.Tool, validate bool) error {
	if !s.open() {
		return fmt.Errorf("session is %s, cannot apply", s.state)
	}
	if !s.Has_changes() {
		return fmt.Errorf("no changes to apply")
	}

	if err := s.backup(); err != nil {
		return err
	}

	json_path := s.Save_path + ".json"
	f, err := os.Create(json_path)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	if err := graph.Encode_records(f, s.G.Records()); err != nil {
		f.Close()
		return fmt.Errorf("apply: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	if err := tool.Patch(ctx, s.Save_path, validate); err != nil {
		return err
	}
	os.Remove(json_path)

	s.state = S_APPLIED
	return nil
}

// Discard abandons the session's in-memory edits.
func (s *Session) Discard() {
	if s.open() {
		s.state = S_DISCARDED
	}
}
