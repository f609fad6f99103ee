package simplify

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// orderedMap is the object representation used throughout this package: an
// insertion-ordered string-keyed map, so that keys the rules add are always
// appended after the keys already present, and round-tripping a schema that
// was never touched reproduces its original key order exactly.
type orderedMap = orderedmap.OrderedMap[string, any]

func newOrderedMap() *orderedMap {
	return orderedmap.New[string, any]()
}

// asObject reports whether v decodes to a schema object and returns it.
func asObject(v any) (*orderedMap, bool) {
	m, ok := v.(*orderedMap)
	return m, ok
}

// isTrueSchema reports whether v is the boolean schema `true`, or an object
// schema with no keywords (which admits every instance, same as `true`).
func isTrueSchema(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	if m, ok := asObject(v); ok {
		return m.Len() == 0
	}
	return false
}

// isFalseSchema reports whether v is the boolean schema `false`.
func isFalseSchema(v any) bool {
	b, ok := v.(bool)
	return ok && !b
}

// isObjectSchema reports whether v is an object schema (as opposed to one
// of the two boolean schemas).
func isObjectSchema(v any) bool {
	_, ok := asObject(v)
	return ok
}

// replaceWithFalse overwrites *slot with the false schema and reports
// whether that changed anything.
func replaceWithFalse(slot *any) bool {
	if isFalseSchema(*slot) {
		return false
	}
	*slot = false
	return true
}

// replaceWithTrue overwrites *slot with the true schema (rendered as an
// empty object, matching the canonical form a rule-simplified schema
// settles into) and reports whether that changed anything.
func replaceWithTrue(slot *any) bool {
	if isTrueSchema(*slot) {
		return false
	}
	*slot = newOrderedMap()
	return true
}

// getKeyword looks up key in an object schema, reporting presence.
func getKeyword(m *orderedMap, key string) (any, bool) {
	return m.Get(key)
}

// setKeyword inserts or overwrites key in m. New keys are always appended,
// matching the insertion-order determinism the driver and codec rely on.
func setKeyword(m *orderedMap, key string, value any) {
	m.Set(key, value)
}

// deleteKeyword removes key from m if present, reporting whether it was
// present (i.e. whether this is a real change).
func deleteKeyword(m *orderedMap, key string) bool {
	_, present := m.Get(key)
	if present {
		m.Delete(key)
	}
	return present
}

// setType overwrites the object's "type" keyword from a TypeSet, removing
// the keyword entirely when the set is empty or full (an absent "type"
// already means "any type"). Reports whether the object changed.
func setType(m *orderedMap, types TypeSet) bool {
	newValue, present := types.toSchemaValue()
	old, hadOld := getKeyword(m, "type")
	if !present {
		if !hadOld {
			return false
		}
		m.Delete("type")
		return true
	}
	if hadOld && deepEqualJSON(old, newValue) {
		return false
	}
	setKeyword(m, "type", newValue)
	return true
}

// schemaTypeSet reads the "type" keyword of an object schema as a TypeSet.
func schemaTypeSet(m *orderedMap) TypeSet {
	v, present := getKeyword(m, "type")
	return typeSetFromSchemaValue(v, present)
}

// deepEqualJSON compares two decoded JSON values for equality under JSON
// semantics: object key order is irrelevant, numeric value (not
// representation) is what matters.
func deepEqualJSON(a, b any) bool {
	switch av := a.(type) {
	case *orderedMap:
		bv, ok := b.(*orderedMap)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for pair := av.Oldest(); pair != nil; pair = pair.Next() {
			bval, ok := bv.Get(pair.Key)
			if !ok || !deepEqualJSON(pair.Value, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualJSON(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		_, aStr := a.(string)
		_, bStr := b.(string)
		if !aStr && !bStr && isNumberish(a) && isNumberish(b) {
			ra, aok := toRat(a)
			rb, bok := toRat(b)
			return aok && bok && ra.Cmp(rb) == 0
		}
		return a == b
	}
}
