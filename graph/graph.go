package graph

// Graph is the id-indexed view over a decoded record stream.  All lookups
// degrade to absence: a dangling reference, a missing member or a missing
// root resolves to nil/zero, never to an error.  Records reference each
// other freely (including cyclically), but traversal is always driven by an
// explicit member path, so there is nothing to recurse into unboundedly.

import (
	"strconv"
)

// Fixed type name of the session root and the member leading to the player.
const (
	root_type_name = "TG"
	player_member  = "TG:PC"
)

type Graph struct {
	records []*Record
	by_id   map[int64]*Record
}

// Build indexes every record by ID in one pass.  Record order is preserved
// for re-encoding.
func Build(records []*Record) *Graph {
	g := &Graph{
		records: records,
		by_id:   make(map[int64]*Record, len(records)),
	}
	for _, rec := range records {
		if rec.Tag == "extra" || rec.Tag == "opaque" {
			continue // carried for re-encoding only, not addressable
		}
		g.by_id[rec.ID] = rec
	}
	return g
}

func (g *Graph) Records() []*Record {
	return g.records
}

func (g *Graph) Get(id int64) *Record {
	return g.by_id[id]
}

// Resolve follows a reference value one hop.  Non-references and unknown IDs
// yield nil.
func (g *Graph) Resolve(v Value) *Record {
	if v.Kind != K_REF {
		return nil
	}
	return g.by_id[v.Ref]
}

// Member fetches a member with canonical unwrapping applied: wrapped values
// and inline enums come back as their scalar; references come back as K_REF
// (use Member_record to chase them).
func (g *Graph) Member(rec *Record, key string) (Value, bool) {
	v, ok := rec.Member(key)
	if !ok {
		return Value{}, false
	}
	switch v.Kind {
	case K_WRAPPED:
		if v.Inner != nil {
			return *v.Inner, true
		}
		return Null_value(), true
	case K_INLINE:
		if v.Rec != nil {
			if ev, has := v.Rec.Members["value__"]; has {
				return ev, true
			}
		}
	}
	return v, true
}

// Member_record fetches a member and resolves it to a record: either a
// one-hop reference target or an inline record.  Anything else is absent.
func (g *Graph) Member_record(rec *Record, key string) *Record {
	v, ok := rec.Member(key)
	if !ok {
		return nil
	}
	switch v.Kind {
	case K_REF:
		return g.by_id[v.Ref]
	case K_INLINE:
		return v.Rec
	}
	return nil
}

func (g *Graph) Member_int(rec *Record, key string) (int, bool) {
	v, ok := g.Member(rec, key)
	if !ok {
		return 0, false
	}
	return v.Int()
}

func (g *Graph) Member_str(rec *Record, key string) (string, bool) {
	v, ok := g.Member(rec, key)
	if !ok {
		return "", false
	}
	return v.String_value()
}

// Count reads the "<prefix>:Count" member of a container record.
func (g *Graph) Count(rec *Record, prefix string) int {
	n, _ := g.Member_int(rec, prefix+":Count")
	return n
}

// Element resolves the i-th element of a container record.  The container
// protocol is Count first, then "<prefix>:<i>" for i in [0,Count) in
// ascending order; that index is the domain order - there is no other
// ordering signal in the graph.
func (g *Graph) Element(rec *Record, prefix string, i int) *Record {
	return g.Member_record(rec, prefix+":"+strconv.Itoa(i))
}

// Root returns the session root record, or nil when the graph carries no
// character data.
func (g *Graph) Root() *Record {
	for _, rec := range g.records {
		if (rec.Tag == "class" || rec.Tag == "class_id") && rec.Name == root_type_name {
			return rec
		}
	}
	return nil
}

// Player returns the player-character record reached from the root.
func (g *Graph) Player() *Record {
	root := g.Root()
	if root == nil {
		return nil
	}
	return g.Member_record(root, player_member)
}
