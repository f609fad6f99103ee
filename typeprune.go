package simplify

// pruneKeywordsForType deletes every keyword that is not in the union of
// the type-applicable groups for the schema's currently allowed types. A
// keyword shared by two groups (e.g. "minimum" appears under both Number
// and Integer) survives as long as either of its owning types is still
// allowed — it must not be deleted just because one of several owning
// types was excluded.
func pruneKeywordsForType(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	types := schemaTypeSet(obj)
	if types.IsFull() {
		return false
	}
	allowed := map[string]bool{}
	for _, pt := range types.Members() {
		for _, kw := range typeApplicableKeywords[pt] {
			allowed[kw] = true
		}
	}
	changed := false
	for _, keywords := range typeApplicableKeywords {
		for _, kw := range keywords {
			if allowed[kw] {
				continue
			}
			changed = deleteKeyword(obj, kw) || changed
		}
	}
	return changed
}

// canonicalizeType rewrites the "type" keyword into its canonical
// rendering: absent when it would admit everything, a bare string for a
// single type, a sorted array otherwise, with "integer" dropped whenever
// "number" is also present.
func canonicalizeType(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	if _, present := getKeyword(obj, "type"); !present {
		return false
	}
	return setType(obj, schemaTypeSet(obj))
}
