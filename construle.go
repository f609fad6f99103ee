package simplify

// narrowTypeFromConst narrows a schema's "type" to exactly the primitive
// type of its "const" value. A const value fully determines which single
// instance can ever validate, so "type" can always be tightened to (at
// most) that instance's own type without rejecting anything the original
// schema accepted; if the current "type" doesn't even admit the const's
// type, the whole schema is unsatisfiable.
func narrowTypeFromConst(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	constVal, ok := getKeyword(obj, "const")
	if !ok {
		return false
	}
	dt, ok := getDataType(constVal)
	if !ok {
		return false
	}

	current := schemaTypeSet(obj)
	if !current.Contains(dt) {
		return replaceWithFalse(slot)
	}

	narrowed := current & newTypeSet(dt)
	return setType(obj, narrowed)
}
