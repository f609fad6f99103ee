package simplify

// narrowTypeFromEnum narrows a schema's "type" to the union of the
// primitive types actually present among its "enum" values, and drops any
// enum value that the current "type" could never admit in the first
// place (it would never validate anyway, so keeping it changes nothing
// about which instances pass).
func narrowTypeFromEnum(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "enum")
	if !ok {
		return false
	}
	values, _ := raw.([]any)

	current := schemaTypeSet(obj)
	var kept []any
	var union TypeSet
	for _, v := range values {
		dt, ok := getDataType(v)
		if ok && !current.Contains(dt) {
			continue
		}
		if ok {
			union |= newTypeSet(dt)
		} else {
			union = allTypesSet
		}
		kept = append(kept, v)
	}

	changed := false
	if len(kept) != len(values) {
		if len(kept) == 0 {
			return replaceWithFalse(slot)
		}
		setKeyword(obj, "enum", kept)
		changed = true
	}
	if union != 0 {
		if setType(obj, current&union) {
			changed = true
		}
	}
	return changed
}
