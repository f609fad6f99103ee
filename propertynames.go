package simplify

// simplifyPropertyNames narrows or eliminates "propertyNames" based on
// what the schema's own "type" and "minProperties" already guarantee:
//
//   - If the schema can never match an object, "propertyNames" never
//     evaluates at all and is dropped outright.
//   - If the schema requires at least one property (minProperties > 0)
//     and "propertyNames" can never admit a string, no object instance
//     can ever satisfy both constraints at once — "type: object" is
//     eliminated (an unrelated pass then drops "propertyNames" as a
//     now-inapplicable keyword), or the whole schema collapses to false
//     if object was the only type.
//   - Otherwise, since JSON object keys are always strings, a
//     "propertyNames" that would only ever reject non-string values
//     (whatever else it asserts) is tightened to assert "type: string"
//     and its own redundant type-only form is dropped as a tautology.
func simplifyPropertyNames(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	raw, ok := getKeyword(obj, "propertyNames")
	if !ok {
		return false
	}

	if isTrueSchema(raw) {
		return deleteKeyword(obj, "propertyNames")
	}

	types := schemaTypeSet(obj)
	minProps := 0.0
	if v, ok := getKeyword(obj, "minProperties"); ok {
		if r, ok := toRat(v); ok {
			minProps, _ = r.Float64()
		}
	}

	if !types.Contains(Object) {
		return deleteKeyword(obj, "propertyNames")
	}

	propNamesObj, rawIsObject := asObject(raw)
	propNameTypes := allTypesSet
	if rawIsObject {
		propNameTypes = schemaTypeSet(propNamesObj)
	} else if isFalseSchema(raw) {
		propNameTypes = 0
	}

	if minProps > 0 && (isFalseSchema(raw) || !propNameTypes.Contains(String)) {
		narrowed := types.Remove(Object)
		changed := setType(obj, narrowed)
		if narrowed.IsEmpty() {
			return replaceWithFalse(slot)
		}
		return changed
	}

	members := propNameTypes.Members()
	if len(members) == 1 {
		if members[0] != String {
			setKeyword(obj, "maxProperties", 0.0)
			deleteKeyword(obj, "propertyNames")
			return true
		}
		if rawIsObject && propNamesObj.Len() == 1 {
			deleteKeyword(obj, "propertyNames")
			return true
		}
		return false
	}

	if propNameTypes.Contains(String) {
		if rawIsObject {
			setType(propNamesObj, newTypeSet(String))
		}
	} else {
		setKeyword(obj, "maxProperties", 0.0)
		deleteKeyword(obj, "propertyNames")
	}
	return true
}
