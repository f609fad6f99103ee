package simplify

import "sort"

// PrimitiveType is one of the seven JSON value kinds a schema's "type"
// keyword can name.
type PrimitiveType uint8

const (
	Array PrimitiveType = iota
	Boolean
	Integer
	Null
	Number
	Object
	String
)

var primitiveTypeNames = map[PrimitiveType]string{
	Array:   "array",
	Boolean: "boolean",
	Integer: "integer",
	Null:    "null",
	Number:  "number",
	Object:  "object",
	String:  "string",
}

var primitiveTypeByName = map[string]PrimitiveType{
	"array":   Array,
	"boolean": Boolean,
	"integer": Integer,
	"null":    Null,
	"number":  Number,
	"object":  Object,
	"string":  String,
}

func (p PrimitiveType) String() string {
	if name, ok := primitiveTypeNames[p]; ok {
		return name
	}
	return "unknown"
}

// parsePrimitiveType maps a "type" string to its PrimitiveType, reporting
// whether the name was recognized.
func parsePrimitiveType(name string) (PrimitiveType, bool) {
	p, ok := primitiveTypeByName[name]
	return p, ok
}

// bit returns the bitmask contribution of p within a TypeSet. Number's
// contribution spans both its own position and Integer's position, which is
// what makes "every integer is a number" a property of the bitset rather
// than a case threaded through every caller.
func (p PrimitiveType) bit() uint8 {
	if p == Number {
		return 1<<uint(Number) | 1<<uint(Integer)
	}
	return 1 << uint(p)
}

// TypeSet is a bitset over the seven PrimitiveType tags, used to represent
// the (possibly multi-valued) "type" keyword.
type TypeSet uint8

const allTypesSet TypeSet = TypeSet(1<<uint(Array) | 1<<uint(Boolean) | 1<<uint(Integer) |
	1<<uint(Null) | 1<<uint(Number) | 1<<uint(Object) | 1<<uint(String))

// newTypeSet builds a TypeSet from individual primitive types.
func newTypeSet(types ...PrimitiveType) TypeSet {
	var s TypeSet
	for _, t := range types {
		s |= TypeSet(t.bit())
	}
	return s
}

// typeSetFromSchemaValue interprets a decoded "type" value (absent, a
// string, or an array of strings) as a TypeSet. An absent or unrecognized
// value yields the full set, since an absent "type" keyword restricts
// nothing.
func typeSetFromSchemaValue(v any, present bool) TypeSet {
	if !present {
		return allTypesSet
	}
	switch tv := v.(type) {
	case string:
		if p, ok := parsePrimitiveType(tv); ok {
			return newTypeSet(p)
		}
		return allTypesSet
	case []any:
		var s TypeSet
		for _, item := range tv {
			if name, ok := item.(string); ok {
				if p, ok := parsePrimitiveType(name); ok {
					s |= TypeSet(p.bit())
				}
			}
		}
		if s == 0 {
			return allTypesSet
		}
		return s
	default:
		return allTypesSet
	}
}

// Contains reports whether t admits p. For Number it additionally requires
// that the set include Number's own contribution, not merely the bit that
// Integer also sets — so an integer-only TypeSet does not claim to contain
// Number.
func (t TypeSet) Contains(p PrimitiveType) bool {
	if TypeSet(p.bit())&t == 0 {
		return false
	}
	if p == Number {
		return t&(1<<uint(Number)) != 0
	}
	return true
}

// Remove drops p from t.
func (t TypeSet) Remove(p PrimitiveType) TypeSet {
	return t &^ TypeSet(p.bit())
}

// RemoveAll drops every type in other from t.
func (t TypeSet) RemoveAll(other TypeSet) TypeSet {
	for _, p := range allPrimitiveTypes {
		if other.Contains(p) {
			t = t.Remove(p)
		}
	}
	return t
}

var allPrimitiveTypes = []PrimitiveType{Array, Boolean, Integer, Null, Number, Object, String}

// IsEmpty reports whether t admits no type at all.
func (t TypeSet) IsEmpty() bool {
	return t == 0
}

// IsFull reports whether t admits every primitive type.
func (t TypeSet) IsFull() bool {
	return t == allTypesSet
}

// HasOtherThan reports whether t admits any type besides p.
func (t TypeSet) HasOtherThan(p PrimitiveType) bool {
	return t.Remove(p) != 0
}

// Members lists the primitive types t admits, in canonical (enum) order.
func (t TypeSet) Members() []PrimitiveType {
	var out []PrimitiveType
	for _, p := range allPrimitiveTypes {
		if t.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// toSchemaValue renders t back into a decoded "type" keyword value: absent
// (nil, false) if t is empty or full, a bare string if t names exactly one
// type, otherwise a sorted array of strings. Integer is dropped from the
// rendering whenever Number is also present, since Number already implies
// it.
func (t TypeSet) toSchemaValue() (any, bool) {
	if t.IsEmpty() || t.IsFull() {
		return nil, false
	}
	members := t.Members()
	if t.Contains(Number) {
		filtered := members[:0:0]
		for _, p := range members {
			if p != Integer {
				filtered = append(filtered, p)
			}
		}
		members = filtered
	}
	if len(members) == 1 {
		return members[0].String(), true
	}
	names := make([]string, len(members))
	for i, p := range members {
		names[i] = p.String()
	}
	sort.Strings(names)
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out, true
}

// getDataType reports the PrimitiveType tag of a decoded JSON value, with
// integer/number discrimination done by isIntegerValue and isNumberValue.
func getDataType(v any) (PrimitiveType, bool) {
	switch val := v.(type) {
	case nil:
		return Null, true
	case bool:
		return Boolean, true
	case string:
		return String, true
	case []any:
		return Array, true
	case *orderedMap:
		return Object, true
	default:
		if isIntegerValue(val) {
			return Integer, true
		}
		if isNumberValue(val) {
			return Number, true
		}
		return 0, false
	}
}
