package simplify

// simplifyAdditionalProperties drops a tautological "additionalProperties"
// (true accepts any extra property, same as the keyword being absent) and
// also drops it whenever the schema's "type" can never admit an object,
// since a schema that never matches objects never evaluates
// "additionalProperties" in the first place.
func simplifyAdditionalProperties(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "additionalProperties")
	if !ok {
		return false
	}

	if !schemaTypeSet(obj).Contains(Object) {
		return deleteKeyword(obj, "additionalProperties")
	}
	if isTrueSchema(raw) {
		return deleteKeyword(obj, "additionalProperties")
	}
	return false
}
