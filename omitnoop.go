package simplify

// dropNeutralKeywords removes any keyword whose present value is already
// the neutral element for that keyword — additionalProperties/
// additionalItems: true, uniqueItems: false, minLength/minItems/
// minProperties: 0, required: [], enum never (handled by its own rule,
// listed here only so the table in keywordtables.go stays the single
// source of truth for "what counts as neutral").
func dropNeutralKeywords(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	changed := false
	for key, isNeutral := range neutralKeywordValues {
		v, present := getKeyword(obj, key)
		if present && isNeutral(v) {
			changed = deleteKeyword(obj, key) || changed
		}
	}
	return changed
}
