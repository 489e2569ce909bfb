package graph

// Codec for the external converter's record stream.  The stream is a JSON
// document {"records": [...]} where each element is tagged "class",
// "class_id" (same shape, alternate tag) or "array_id".  Member values are a
// bare scalar, {"reference": id}, {"value": scalar}, or an inline class
// carrying "value__" (the enum encoding).
//
// Decoding walks members with a token decoder so key order survives, and
// stashes each member's original bytes; encoding re-emits untouched members
// verbatim so the converter gets back exactly what it produced everywhere we
// didn't edit.  Content we don't interpret at all still has to survive the
// round trip: elements with an unknown tag come back as "opaque" records and
// top-level keys other than "records" come back as "extra" records, both
// carrying their original bytes for verbatim re-emission.

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode_records parses a converter export into the record list.
func Decode_records(r io.Reader) ([]*Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("record stream: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record stream: expected top-level object, got %v", tok)
	}

	records := []*Record{}
	for dec.More() {
		key_tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("record stream: %w", err)
		}
		key, _ := key_tok.(string)

		if key != "records" {
			// Some exports carry extra top-level keys; keep them for
			// the re-encode.
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("record stream: %w", err)
			}
			records = append(records, &Record{
				Tag:  "extra",
				Name: key,
				Raw:  append([]byte(nil), raw...),
			})
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("record stream: %w", err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return nil, fmt.Errorf("record stream: records is not an array")
		}

		for dec.More() {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("record stream: %w", err)
			}
			rec, err := decode_record(raw)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if _, err := dec.Token(); err != nil { // closing ]
			return nil, fmt.Errorf("record stream: %w", err)
		}
	}

	return records, nil
}

func decode_record(raw json.RawMessage) (*Record, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("record stream: %w", err)
	}

	for _, tag := range []string{"class", "class_id"} {
		if inner, ok := top[tag]; ok {
			return decode_class(inner, tag)
		}
	}

	if id_raw, ok := top["array_id"]; ok {
		rec := &Record{Tag: "array", Raw: append([]byte(nil), raw...)}
		var id json.Number
		if err := json.Unmarshal(id_raw, &id); err != nil {
			return nil, fmt.Errorf("record stream: bad array_id: %w", err)
		}
		n, err := id.Int64()
		if err != nil {
			return nil, fmt.Errorf("record stream: bad array_id: %w", err)
		}
		rec.ID = n
		if count_raw, ok := top["count"]; ok {
			var count json.Number
			if json.Unmarshal(count_raw, &count) == nil {
				if c, err := count.Int64(); err == nil {
					rec.Set("count", Value{Kind: K_ARRAYCOUNT, Int64: c, Raw: append([]byte(nil), count_raw...)})
				}
			}
		}
		return rec, nil
	}

	// Unrecognized element; not addressable, but the converter produced it
	// so it has to survive the round trip.
	return &Record{Tag: "opaque", Raw: append([]byte(nil), raw...)}, nil
}

// decode_class parses a {id, name, members} object, walking the members with
// a token decoder so their order is kept.
func decode_class(raw json.RawMessage, tag string) (*Record, error) {
	rec := &Record{Tag: tag}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("record stream: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record stream: %s is not an object", tag)
	}

	for dec.More() {
		key_tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("record stream: %w", err)
		}
		key, _ := key_tok.(string)

		switch key {
		case "id":
			var id json.Number
			if err := dec.Decode(&id); err != nil {
				return nil, fmt.Errorf("record stream: bad id: %w", err)
			}
			n, err := id.Int64()
			if err != nil {
				return nil, fmt.Errorf("record stream: bad id: %w", err)
			}
			rec.ID = n

		case "name":
			if err := dec.Decode(&rec.Name); err != nil {
				return nil, fmt.Errorf("record stream: bad name: %w", err)
			}

		case "members":
			if err := decode_members(dec, rec); err != nil {
				return nil, err
			}

		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("record stream: %w", err)
			}
		}
	}

	return rec, nil
}

func decode_members(dec *json.Decoder, rec *Record) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("record stream: %w", err)
	}
	if tok == nil {
		return nil // "members": null
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record stream: members is not an object")
	}

	for dec.More() {
		key_tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("record stream: %w", err)
		}
		key, _ := key_tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("record stream: %w", err)
		}
		v, err := parse_value(raw)
		if err != nil {
			return err
		}
		rec.Set(key, v)
	}

	if _, err := dec.Token(); err != nil { // closing }
		return fmt.Errorf("record stream: %w", err)
	}
	return nil
}

func parse_value(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	keep := append([]byte(nil), raw...)
	if len(trimmed) == 0 {
		return Value{Kind: K_NULL, Raw: keep}, nil
	}

	switch trimmed[0] {
	case 'n':
		return Value{Kind: K_NULL, Raw: keep}, nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, fmt.Errorf("record stream: %w", err)
		}
		return Value{Kind: K_BOOL, Bool: b, Raw: keep}, nil

	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, fmt.Errorf("record stream: %w", err)
		}
		return Value{Kind: K_STRING, Str: s, Raw: keep}, nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return Value{}, fmt.Errorf("record stream: %w", err)
		}
		if ref_raw, ok := obj["reference"]; ok {
			var id json.Number
			if err := json.Unmarshal(ref_raw, &id); err != nil {
				return Value{}, fmt.Errorf("record stream: bad reference: %w", err)
			}
			n, err := id.Int64()
			if err != nil {
				return Value{}, fmt.Errorf("record stream: bad reference: %w", err)
			}
			return Value{Kind: K_REF, Ref: n, Raw: keep}, nil
		}
		if inner_raw, ok := obj["value"]; ok {
			inner, err := parse_value(inner_raw)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: K_WRAPPED, Inner: &inner, Raw: keep}, nil
		}
		for _, tag := range []string{"class", "class_id"} {
			if inner_raw, ok := obj[tag]; ok {
				inline, err := decode_class(inner_raw, tag)
				if err != nil {
					return Value{}, err
				}
				return Value{Kind: K_INLINE, Rec: inline, Raw: keep}, nil
			}
		}
		return Value{Kind: K_OPAQUE, Raw: keep}, nil

	case '[':
		return Value{Kind: K_OPAQUE, Raw: keep}, nil

	default:
		num := json.Number(trimmed)
		if !strings.ContainsAny(string(trimmed), ".eE") {
			n, err := num.Int64()
			if err == nil {
				return Value{Kind: K_INT, Int64: n, Raw: keep}, nil
			}
		}
		f, err := num.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("record stream: bad number %q", trimmed)
		}
		return Value{Kind: K_FLOAT, Float64: f, Raw: keep}, nil
	}
}

// Encode_records writes the (possibly mutated) record list back in the
// converter's shape.  "extra" records rejoin the document as top-level keys
// after the records array.
func Encode_records(w io.Writer, records []*Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(`{"records": [`)

	first := true
	for _, rec := range records {
		if rec.Tag == "extra" {
			continue
		}
		if !first {
			bw.WriteString(", ")
		}
		first = false
		if err := encode_record(bw, rec); err != nil {
			return err
		}
	}
	bw.WriteString("]")

	for _, rec := range records {
		if rec.Tag != "extra" {
			continue
		}
		key, err := json.Marshal(rec.Name)
		if err != nil {
			return err
		}
		bw.WriteString(", ")
		bw.Write(key)
		bw.WriteString(": ")
		bw.Write(rec.Raw)
	}

	bw.WriteString("}")
	return bw.Flush()
}

func encode_record(bw *bufio.Writer, rec *Record) error {
	if (rec.Tag == "array" || rec.Tag == "opaque") && rec.Raw != nil {
		bw.Write(rec.Raw)
		return nil
	}

	tag := rec.Tag
	if tag == "" {
		tag = "class"
	}
	bw.WriteString(`{"`)
	bw.WriteString(tag)
	bw.WriteString(`": `)
	if err := encode_class(bw, rec); err != nil {
		return err
	}
	bw.WriteString("}")
	return nil
}

func encode_class(bw *bufio.Writer, rec *Record) error {
	bw.WriteString(`{"id": `)
	bw.WriteString(strconv.FormatInt(rec.ID, 10))
	bw.WriteString(`, "name": `)
	name, err := json.Marshal(rec.Name)
	if err != nil {
		return err
	}
	bw.Write(name)
	bw.WriteString(`, "members": {`)

	for i, key := range rec.Order {
		if i > 0 {
			bw.WriteString(", ")
		}
		encoded_key, err := json.Marshal(key)
		if err != nil {
			return err
		}
		bw.Write(encoded_key)
		bw.WriteString(": ")
		if err := encode_value(bw, rec.Members[key]); err != nil {
			return err
		}
	}

	bw.WriteString("}}")
	return nil
}

func encode_value(bw *bufio.Writer, v Value) error {
	// Untouched members go back exactly as they came in.
	if v.Raw != nil {
		bw.Write(v.Raw)
		return nil
	}

	switch v.Kind {
	case K_NULL, K_OPAQUE:
		bw.WriteString("null")

	case K_INT, K_ARRAYCOUNT:
		bw.WriteString(strconv.FormatInt(v.Int64, 10))

	case K_FLOAT:
		bw.WriteString(strconv.FormatFloat(v.Float64, 'g', -1, 64))

	case K_BOOL:
		bw.WriteString(strconv.FormatBool(v.Bool))

	case K_STRING:
		encoded, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		bw.Write(encoded)

	case K_REF:
		bw.WriteString(`{"reference": `)
		bw.WriteString(strconv.FormatInt(v.Ref, 10))
		bw.WriteString("}")

	case K_WRAPPED:
		bw.WriteString(`{"value": `)
		inner := Null_value()
		if v.Inner != nil {
			inner = *v.Inner
		}
		if err := encode_value(bw, inner); err != nil {
			return err
		}
		bw.WriteString("}")

	case K_INLINE:
		tag := "class"
		if v.Rec != nil && v.Rec.Tag != "" {
			tag = v.Rec.Tag
		}
		bw.WriteString(`{"`)
		bw.WriteString(tag)
		bw.WriteString(`": `)
		if v.Rec == nil {
			bw.WriteString("null")
		} else if err := encode_class(bw, v.Rec); err != nil {
			return err
		}
		bw.WriteString("}")
	}

	return nil
}
