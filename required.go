package simplify

// simplifyRequired drops an empty "required" array: it asserts that zero
// named properties are present, which every object instance already
// satisfies.
func simplifyRequired(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "required")
	if !ok {
		return false
	}
	arr, _ := raw.([]any)
	if len(arr) == 0 {
		return deleteKeyword(obj, "required")
	}
	return false
}
