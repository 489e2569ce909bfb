package graph

// A record member is one of a handful of shapes in the converter's stream:
// a bare scalar, {"reference": id}, {"value": scalar}, an inline class (which
// is how enums arrive, carrying a single "value__" member), or an array
// count.  Rather than branch on shape at every call site, everything decodes
// into this one tagged union and Graph.Member does the canonical unwrapping.

import (
	"strconv"
)

type Kind int

const (
	K_NULL Kind = iota
	K_INT
	K_FLOAT
	K_BOOL
	K_STRING
	K_REF        // {"reference": id}, resolved one hop on demand
	K_WRAPPED    // {"value": scalar}
	K_INLINE     // nested class/class_id record; enums live here as value__
	K_ARRAYCOUNT // element count of an array record
	K_OPAQUE     // anything we don't interpret; round-trips verbatim
)

type Value struct {
	Kind    Kind
	Int64   int64
	Float64 float64
	Bool    bool
	Str     string
	Ref     int64
	Inner   *Value
	Rec     *Record // inline record for K_INLINE

	// Raw is the member's original JSON.  The encoder re-emits it verbatim
	// so that untouched members survive a decode/encode round trip exactly;
	// mutation produces a fresh Value with no Raw, which the encoder then
	// synthesizes from the Kind.
	Raw []byte
}

func Null_value() Value           { return Value{Kind: K_NULL} }
func Int_value(n int) Value       { return Value{Kind: K_INT, Int64: int64(n)} }
func Str_value(s string) Value    { return Value{Kind: K_STRING, Str: s} }
func Bool_value(b bool) Value     { return Value{Kind: K_BOOL, Bool: b} }
func Ref_value(id int64) Value    { return Value{Kind: K_REF, Ref: id} }
func Wrapped_value(v Value) Value { return Value{Kind: K_WRAPPED, Inner: &v} }

// Int returns the value as an int after scalar unwrapping.
func (v Value) Int() (int, bool) {
	switch v.Kind {
	case K_INT, K_ARRAYCOUNT:
		return int(v.Int64), true
	case K_FLOAT:
		return int(v.Float64), true
	case K_WRAPPED:
		if v.Inner != nil {
			return v.Inner.Int()
		}
	case K_INLINE:
		if v.Rec != nil {
			if ev, ok := v.Rec.Members["value__"]; ok {
				return ev.Int()
			}
		}
	}
	return 0, false
}

func (v Value) String_value() (string, bool) {
	switch v.Kind {
	case K_STRING:
		return v.Str, true
	case K_WRAPPED:
		if v.Inner != nil {
			return v.Inner.String_value()
		}
	}
	return "", false
}

func (v Value) Bool_value() (bool, bool) {
	switch v.Kind {
	case K_BOOL:
		return v.Bool, true
	case K_WRAPPED:
		if v.Inner != nil {
			return v.Inner.Bool_value()
		}
	}
	return false, false
}

func (v Value) Display() string {
	switch v.Kind {
	case K_NULL:
		return "null"
	case K_INT, K_ARRAYCOUNT:
		return strconv.FormatInt(v.Int64, 10)
	case K_FLOAT:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case K_BOOL:
		return strconv.FormatBool(v.Bool)
	case K_STRING:
		return v.Str
	case K_REF:
		return "ref:" + strconv.FormatInt(v.Ref, 10)
	case K_WRAPPED:
		if v.Inner != nil {
			return v.Inner.Display()
		}
		return "wrapped:empty"
	case K_INLINE:
		if v.Rec != nil {
			return "inline:" + v.Rec.Name
		}
		return "inline:empty"
	}
	return "opaque"
}

// Record is one addressable node of the reference graph.  Members keeps the
// stream's key order in Order so re-encoding emits them as they arrived.
type Record struct {
	ID      int64
	Name    string
	Tag     string // "class", "class_id", "array", "opaque" or "extra"
	Members map[string]Value
	Order   []string
	Raw     []byte // original JSON for array/opaque/extra records, re-emitted verbatim
}

// Set stores a member value, preserving first-seen key order.
func (r *Record) Set(key string, v Value) {
	if r.Members == nil {
		r.Members = map[string]Value{}
	}
	if _, exists := r.Members[key]; !exists {
		r.Order = append(r.Order, key)
	}
	r.Members[key] = v
}

func (r *Record) Member(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.Members[key]
	return v, ok
}
