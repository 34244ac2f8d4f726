package conftree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the lower-case kind name used in rule files and messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind parses a kind name as written in rule files.
// Accepts a few aliases for ergonomics ("integer"/"float" map to number).
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "null":
		return KindNull, true
	case "bool", "boolean":
		return KindBool, true
	case "number", "integer", "int", "float":
		return KindNumber, true
	case "string", "str":
		return KindString, true
	case "list", "array":
		return KindList, true
	case "map", "object":
		return KindMap, true
	default:
		return KindNull, false
	}
}

// Kinds lists all kind names, for error messages.
func Kinds() []string {
	return []string{"null", "bool", "number", "string", "list", "map"}
}

// Entry is a single key/value pair of a mapping. Order of entries within a
// Value of KindMap is the order the pairs appeared in the source document.
type Entry struct {
	Key   string
	Value Value
}

// Value is an immutable tagged variant over configuration data.
// The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []Value
	entries []Entry
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number. All numeric source values share float64 semantics.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

// Map wraps an ordered sequence of entries. Keys must be unique; duplicates
// are a loader-level error and are not checked here.
func Map(entries ...Entry) Value { return Value{kind: KindMap, entries: entries} }

// E is a convenience constructor for map entries, mostly used in tests.
func E(key string, v Value) Entry { return Entry{Key: key, Value: v} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Valid only for KindNumber.
func (v Value) Number() float64 { return v.n }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.s }

// Items returns the elements of a list. Valid only for KindList.
// The returned slice must not be modified.
func (v Value) Items() []Value { return v.items }

// Entries returns the ordered entries of a map. Valid only for KindMap.
// The returned slice must not be modified.
func (v Value) Entries() []Entry { return v.entries }

// Len returns the element count for lists and maps and the code point count
// for strings. Zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.entries)
	case KindString:
		return len([]rune(v.s))
	default:
		return 0
	}
}

// Get looks up a key in a map value. Returns false for missing keys and for
// non-map values.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Index returns the i-th element of a list value. Returns false when out of
// bounds or for non-list values.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList || i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Equal reports deep structural equality. Map comparison is order-insensitive:
// two maps are equal when they hold the same key set with equal values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.entries) != len(o.entries) {
			return false
		}
		for _, e := range v.entries {
			ov, ok := o.Get(e.Key)
			if !ok || !e.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for violation messages: scalars verbatim, strings
// quoted, composites in a compact JSON-ish form.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		sb.WriteString(strconv.FormatFloat(v.n, 'f', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindList:
		sb.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			it.render(sb)
		}
		sb.WriteByte(']')
	case KindMap:
		sb.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Key)
			sb.WriteString(": ")
			e.Value.render(sb)
		}
		sb.WriteByte('}')
	}
}

// Any converts the value to plain Go types (map[string]any, []any, float64,
// string, bool, nil) for serialization. Map order is lost in the conversion;
// callers needing order must walk Entries directly.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.Any()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			out[e.Key] = e.Value.Any()
		}
		return out
	default:
		return nil
	}
}

// Keys returns the keys of a map value in stored order. Nil for non-maps.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// SortedKeys returns the keys of a map value sorted lexically, for stable
// display contexts that do not care about document order.
func (v Value) SortedKeys() []string {
	keys := v.Keys()
	sort.Strings(keys)
	return keys
}
