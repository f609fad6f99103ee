package simplify

// simplifyAnyOf removes every arm of "anyOf" that is already the false
// schema, or whose own declared type can never overlap the outer schema's
// declared type (such an arm could never let an instance through either,
// since the outer "type" already rejects it before "anyOf" is even
// reached). It collapses the whole keyword to nothing if any surviving arm
// is the true schema (then anyOf can never reject an instance, so it adds
// nothing). A singleton surviving arm is hoisted by intersecting it
// directly into the parent, since "at least one of exactly one thing" is
// just that thing.
func simplifyAnyOf(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "anyOf")
	if !ok {
		return false
	}
	arms, _ := raw.([]any)
	outer := schemaTypeSet(obj)

	var kept []any
	changed := false
	for _, arm := range arms {
		if isFalseSchema(arm) {
			changed = true
			continue
		}
		if isTrueSchema(arm) {
			deleteKeyword(obj, "anyOf")
			return true
		}
		if armObj, ok := asObject(arm); ok {
			if outer&schemaTypeSet(armObj) == 0 {
				changed = true
				continue
			}
		}
		kept = append(kept, arm)
	}

	if len(kept) == 0 {
		return replaceWithFalse(slot)
	}
	if len(kept) == 1 {
		intersect(slot, kept[0])
		if obj, ok = asObject(*slot); ok {
			deleteKeyword(obj, "anyOf")
		}
		return true
	}
	if changed {
		setKeyword(obj, "anyOf", kept)
	}
	return changed
}
