package simplify

// simplifyAllOf intersects every arm of an "allOf" list into the schema
// itself, then drops the keyword. allOf's semantics are exactly "every arm
// must hold", which is what intersect computes directly — there is no
// reason to keep the list around once each arm has been folded in.
//
// The keyword is dropped before the arms are processed, not after: when
// intersect cannot fully merge an arm (its Partial case) it folds the
// unmergeable remainder back into this same "allOf" key as a fresh residual
// arm. Deleting the original list first means that residual lands in an
// otherwise-empty key instead of being wiped out by a delete that runs
// after it was written. When the arms fold back into exactly the residual
// that was already there, the schema is unchanged and no change is
// reported.
func simplifyAllOf(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "allOf")
	if !ok {
		return false
	}
	arms, _ := raw.([]any)
	before := deepCopy(*slot)
	changed := deleteKeyword(obj, "allOf")

	for _, arm := range arms {
		res := intersect(slot, arm)
		changed = changed || res.Changed
		if isFalseSchema(*slot) {
			return true
		}
		if _, ok = asObject(*slot); !ok {
			return changed
		}
	}
	return changed && !deepEqualJSON(before, *slot)
}

// flattenAllOf lifts a nested "allOf" arm's own "allOf" list up into the
// parent's list, one level at a time, so simplifyAllOf sees a flat list of
// arms instead of having to recurse into arms that are themselves only
// conjunctions.
func flattenAllOf(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "allOf")
	if !ok {
		return false
	}
	arms, _ := raw.([]any)

	changed := false
	var flat []any
	for _, arm := range arms {
		armObj, isObj := asObject(arm)
		if !isObj {
			flat = append(flat, arm)
			continue
		}
		nested, hasNested := getKeyword(armObj, "allOf")
		if !hasNested {
			flat = append(flat, arm)
			continue
		}
		nestedArms, _ := nested.([]any)
		// The arm may assert more than just its nested allOf (e.g.
		// {"type":"string","allOf":[C,D]} also asserts "type":"string").
		// Lifting the nested arms must not drop that: keep the arm itself,
		// minus its own now-redundant "allOf" key, as one more flat arm.
		if armObj.Len() > 1 {
			rest := deepCopy(arm).(*orderedMap)
			rest.Delete("allOf")
			flat = append(flat, rest)
		}
		flat = append(flat, nestedArms...)
		changed = true
	}
	if changed {
		setKeyword(obj, "allOf", flat)
	}
	return changed
}
