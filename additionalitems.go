package simplify

// simplifyAdditionalItems narrows or eliminates "additionalItems" based on
// what "items" already implies:
//
//   - A true-schema "additionalItems" constrains nothing and is dropped.
//   - If "items" is a single schema rather than a tuple, every array
//     element is already constrained by "items" directly, leaving no
//     "additional" (beyond-tuple) position for "additionalItems" to ever
//     apply to.
//   - If "items" is a tuple of length L and "additionalItems" is the
//     false schema, the array can never have more than L elements; that
//     bound is captured exactly by tightening "maxItems" to min(existing,
//     L), after which "additionalItems" itself is redundant.
//   - If "items" is a tuple of length L and "maxItems" is already <= L,
//     the array can never reach an additional index, so "additionalItems"
//     never evaluates either way.
func simplifyAdditionalItems(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "additionalItems")
	if !ok {
		return false
	}

	itemsVal, hasItems := getKeyword(obj, "items")
	if !hasItems {
		return deleteKeyword(obj, "additionalItems")
	}
	if isTrueSchema(raw) {
		return deleteKeyword(obj, "additionalItems")
	}
	tuple, isTuple := itemsVal.([]any)
	if !isTuple {
		return deleteKeyword(obj, "additionalItems")
	}
	l := float64(len(tuple))

	if isFalseSchema(raw) {
		deleteKeyword(obj, "additionalItems")
		if existing, ok := getKeyword(obj, "maxItems"); ok {
			if cmp, ok := compareNumeric(existing, l); ok && cmp <= 0 {
				return true
			}
		}
		setKeyword(obj, "maxItems", l)
		return true
	}

	if maxItems, ok := getKeyword(obj, "maxItems"); ok {
		if cmp, ok := compareNumeric(maxItems, l); ok && cmp <= 0 {
			return deleteKeyword(obj, "additionalItems")
		}
	}
	return false
}
