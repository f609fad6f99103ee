package simplify

// dropOrphanedKeywords removes a keyword whose required parent keyword is
// absent: "then"/"else" without "if", "additionalItems" without "items".
// Such a keyword is never consulted by any validator, so it is pure dead
// weight.
func dropOrphanedKeywords(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	changed := false
	for child, parent := range ignoreIfParentAbsent {
		if _, hasChild := getKeyword(obj, child); !hasChild {
			continue
		}
		if _, hasParent := getKeyword(obj, parent); !hasParent {
			changed = deleteKeyword(obj, child) || changed
		}
	}
	return changed
}
