// Package object defines elf-lang's runtime value model: one Go type per
// dynamic type (spec.md §4.3), a fixed cross-type ordering used by
// comparisons and canonical Set/Dictionary key ordering, and the
// cell-based lexical Environment described in spec.md §9.
//
// The pattern — an interface plus one struct per variant, each carrying
// its own Type()/Repr() — mirrors go-dws's Value interface
// (internal/interp/value.go, internal/interp/runtime/primitives.go).
package object

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Type names returned by Value.Type(), used in error messages (spec.md §7).
const (
	INTEGER    = "Integer"
	DECIMAL    = "Decimal"
	STRING     = "String"
	BOOLEAN    = "Boolean"
	NIL        = "Nil"
	LIST       = "List"
	SET        = "Set"
	DICTIONARY = "Dictionary"
	FUNCTION   = "Function"
)

// rank orders types for comparisons across different dynamic types
// (spec.md §4.3/§9): Nil < Boolean < Integer/Decimal < String < List < Set <
// Dictionary < Function.
var rank = map[string]int{
	NIL:        0,
	BOOLEAN:    1,
	INTEGER:    2,
	DECIMAL:    2,
	STRING:     3,
	LIST:       4,
	SET:        5,
	DICTIONARY: 6,
	FUNCTION:   7,
}

// Value is implemented by every elf-lang runtime value.
type Value interface {
	Type() string
	Repr() string
}

// Hashable is implemented by the scalar values (Integer, Decimal, String,
// Boolean, Nil). hashKeyOf derives a structural key for Lists and Sets from
// their members' keys; Dictionary and Function values are keyed by identity.
type Hashable interface {
	Value
	HashKey() string
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i *Integer) Type() string    { return INTEGER }
func (i *Integer) Repr() string    { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) HashKey() string { return "i:" + i.Repr() }

// Decimal is a 64-bit floating point value. Repr follows spec.md §9's
// printing policy: always show a fractional part, trimming trailing zeros
// but keeping at least one digit after the point.
type Decimal struct{ Value float64 }

func (d *Decimal) Type() string { return DECIMAL }
func (d *Decimal) Repr() string { return formatDecimal(d.Value) }
func (d *Decimal) HashKey() string {
	return "d:" + strconv.FormatFloat(d.Value, 'g', -1, 64)
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String is a text value.
type String struct{ Value string }

func (s *String) Type() string    { return STRING }
func (s *String) Repr() string    { return s.Value }
func (s *String) HashKey() string { return "s:" + s.Value }

// Boolean is `true` or `false`.
type Boolean struct{ Value bool }

func (b *Boolean) Type() string { return BOOLEAN }
func (b *Boolean) Repr() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) HashKey() string { return "b:" + b.Repr() }

// Nil is the singleton absence-of-value.
type Nil struct{}

func (n *Nil) Type() string    { return NIL }
func (n *Nil) Repr() string    { return "nil" }
func (n *Nil) HashKey() string { return "nil" }

// NilValue is the single shared Nil instance; every evaluated `nil`
// reference and every "no value" result returns this.
var NilValue = &Nil{}

// List is an ordered, heterogeneous, immutable-by-convention sequence.
// Evaluator operations that "change" a List (push, rest, `+`, etc.)
// return a new List rather than mutating Elements in place.
type List struct{ Elements []Value }

func (l *List) Type() string { return LIST }
func (l *List) Repr() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = reprForContainer(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Set is an unordered collection of distinct Hashable members. Members are
// kept in insertion order internally for deterministic Repr/iteration, with
// duplicates (by HashKey) suppressed at construction.
type Set struct {
	Elements []Value
	index    map[string]bool
}

// NewSet builds a Set from elems, discarding duplicates by HashKey and
// keeping first-seen order.
func NewSet(elems []Value) *Set {
	s := &Set{index: make(map[string]bool, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts v if not already present (by HashKey), returning whether it
// was newly added.
func (s *Set) Add(v Value) bool {
	key := hashKeyOf(v)
	if s.index == nil {
		s.index = make(map[string]bool)
	}
	if s.index[key] {
		return false
	}
	s.index[key] = true
	s.Elements = append(s.Elements, v)
	return true
}

// Has reports whether v (by HashKey) is a member.
func (s *Set) Has(v Value) bool {
	return s.index[hashKeyOf(v)]
}

func (s *Set) Type() string { return SET }
func (s *Set) Repr() string {
	sorted := append([]Value(nil), s.Elements...)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j]) })
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = reprForContainer(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// DictEntry is one key/value pair of a Dictionary.
type DictEntry struct {
	Key   Value
	Value Value
}

// Dictionary maps Hashable keys to Values, preserving insertion order for
// Repr while allowing O(1) lookup by HashKey.
type Dictionary struct {
	Entries []DictEntry
	index   map[string]int // HashKey -> index into Entries
}

// NewDictionary builds a Dictionary, later entries overwriting earlier ones
// that share a HashKey (matching ordinary map-literal semantics).
func NewDictionary(entries []DictEntry) *Dictionary {
	d := &Dictionary{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Get looks up key, returning (value, true) if present.
func (d *Dictionary) Get(key Value) (Value, bool) {
	if i, ok := d.index[hashKeyOf(key)]; ok {
		return d.Entries[i].Value, true
	}
	return nil, false
}

// Set inserts or overwrites the entry for key.
func (d *Dictionary) Set(key, value Value) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	hk := hashKeyOf(key)
	if i, ok := d.index[hk]; ok {
		d.Entries[i].Value = value
		return
	}
	d.index[hk] = len(d.Entries)
	d.Entries = append(d.Entries, DictEntry{Key: key, Value: value})
}

func (d *Dictionary) Type() string { return DICTIONARY }
func (d *Dictionary) Repr() string {
	sorted := append([]DictEntry(nil), d.Entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i].Key, sorted[j].Key) })
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = fmt.Sprintf("%s: %s", reprForContainer(e.Key), reprForContainer(e.Value))
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}

// reprForContainer quotes String values when they appear nested inside a
// List/Set/Dictionary repr, matching spec.md §4.3's container-vs-top-level
// string display rule; top-level `puts`/REPL output uses Repr() directly.
func reprForContainer(v Value) string {
	if s, ok := v.(*String); ok {
		return strconv.Quote(s.Value)
	}
	return v.Repr()
}

func isNumericValue(v Value) bool {
	switch v.(type) {
	case *Integer, *Decimal:
		return true
	}
	return false
}

func hashKeyOf(v Value) string {
	if h, ok := v.(Hashable); ok {
		return h.HashKey()
	}
	var elems []Value
	switch c := v.(type) {
	case *List:
		elems = c.Elements
	case *Set:
		elems = c.Elements
	default:
		return fmt.Sprintf("%p", v) // Dictionary and Function: keyed by identity
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Quote(hashKeyOf(e))
	}
	if v.Type() == SET {
		sort.Strings(parts)
	}
	return v.Type() + ":" + strings.Join(parts, ",")
}

// Less implements the fixed cross-type ordering from spec.md §4.3/§9, used
// for Set/Dictionary canonical Repr ordering and relational operators
// across mixed types.
func Less(a, b Value) bool {
	ra, rb := rank[a.Type()], rank[b.Type()]
	if ra != rb {
		return ra < rb
	}
	if isNumericValue(a) && isNumericValue(b) {
		pa, pb := Promote(a, b)
		if ai, ok := pa.(*Integer); ok {
			return ai.Value < pb.(*Integer).Value
		}
		return pa.(*Decimal).Value < pb.(*Decimal).Value
	}
	switch av := a.(type) {
	case *Boolean:
		return !av.Value && b.(*Boolean).Value
	case *String:
		return av.Value < b.(*String).Value
	case *List:
		return lessList(av, b.(*List))
	}
	return false
}

func lessList(a, b *List) bool {
	for i := 0; i < len(a.Elements) && i < len(b.Elements); i++ {
		if Less(a.Elements[i], b.Elements[i]) {
			return true
		}
		if Less(b.Elements[i], a.Elements[i]) {
			return false
		}
	}
	return len(a.Elements) < len(b.Elements)
}

// Equal implements structural equality (spec.md §4.3): same variant and
// equal contents, except Integer and Decimal compare numerically across
// variants (1 == 1.0 is true).
func Equal(a, b Value) bool {
	if isNumericValue(a) && isNumericValue(b) {
		pa, pb := Promote(a, b)
		if ai, ok := pa.(*Integer); ok {
			return ai.Value == pb.(*Integer).Value
		}
		return pa.(*Decimal).Value == pb.(*Decimal).Value
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *String:
		return av.Value == b.(*String).Value
	case *Boolean:
		return av.Value == b.(*Boolean).Value
	case *Nil:
		return true
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Set:
		bv := b.(*Set)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for _, e := range av.Elements {
			if !bv.Has(e) {
				return false
			}
		}
		return true
	case *Dictionary:
		bv := b.(*Dictionary)
		if len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			bval, ok := bv.Get(e.Key)
			if !ok || !Equal(e.Value, bval) {
				return false
			}
		}
		return true
	case *Function:
		return av == b.(*Function)
	}
	return false
}

// Truthy implements elf-lang's truthiness rule (spec.md §4.4): `false`,
// `nil`, `0`, `0.0`, `""`, and empty List/Set/Dictionary are falsy;
// everything else is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case *Boolean:
		return vv.Value
	case *Nil:
		return false
	case *Integer:
		return vv.Value != 0
	case *Decimal:
		return vv.Value != 0
	case *String:
		return vv.Value != ""
	case *List:
		return len(vv.Elements) != 0
	case *Set:
		return len(vv.Elements) != 0
	case *Dictionary:
		return len(vv.Entries) != 0
	default:
		return true
	}
}
