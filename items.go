package simplify

// simplifyItems truncates a tuple-form "items" array to at most "maxItems"
// entries: no array satisfying "maxItems" can ever reach an index beyond
// that bound, so any tuple entries past it are dead weight. This is the
// only sound trim of a tuple's length — trimming it any other way (e.g.
// dropping trailing true-schema entries regardless of "maxItems") would
// silently shrink the effective tuple length that a sibling
// "additionalItems" measures against, changing which array lengths the
// schema accepts. A single-schema (non-tuple) "items" that is the true
// schema is dropped outright, since it constrains nothing beyond what an
// absent "items" already allows.
func simplifyItems(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "items")
	if !ok {
		return false
	}

	if arr, isTuple := raw.([]any); isTuple {
		maxItems, hasMax := getKeyword(obj, "maxItems")
		if !hasMax {
			return false
		}
		m, ok := toRat(maxItems)
		if !ok || !m.IsInt() || m.Sign() < 0 {
			return false
		}
		limit := m.Num().Int64()
		if int64(len(arr)) <= limit {
			return false
		}
		setKeyword(obj, "items", append([]any{}, arr[:limit]...))
		return true
	}

	if isTrueSchema(raw) {
		return deleteKeyword(obj, "items")
	}
	return false
}
