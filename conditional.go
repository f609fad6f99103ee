package simplify

// simplifyConditional resolves an "if"/"then"/"else" triple whenever "if"
// has become trivial. A true "if" always takes the "then" branch, a false
// "if" always takes the "else" branch, so the branch that can never fire
// is dropped and the branch that always fires is folded into "allOf" —
// not intersected directly, since the branch schema may itself still need
// its own simplification pass as an independent allOf arm. If "if" has a
// non-trivial condition but neither "then" nor "else" is present, it can
// never affect validation either way and is simply dropped.
func simplifyConditional(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	ifSchema, hasIf := getKeyword(obj, "if")
	if !hasIf {
		return false
	}

	switch {
	case isFalseSchema(ifSchema):
		deleteKeyword(obj, "if")
		deleteKeyword(obj, "then")
		if elseSchema, ok := getKeyword(obj, "else"); ok {
			deleteKeyword(obj, "else")
			appendAllOf(obj, elseSchema)
		}
		return true
	case isTrueSchema(ifSchema):
		deleteKeyword(obj, "if")
		deleteKeyword(obj, "else")
		if thenSchema, ok := getKeyword(obj, "then"); ok {
			deleteKeyword(obj, "then")
			appendAllOf(obj, thenSchema)
		}
		return true
	default:
		_, hasThen := getKeyword(obj, "then")
		_, hasElse := getKeyword(obj, "else")
		if !hasThen && !hasElse {
			return deleteKeyword(obj, "if")
		}
		return false
	}
}
