package simplify

// maxMinPair names one of the five max/min keyword pairs this rule file
// handles, plus the PrimitiveType the pair is only meaningful for.
//
// eqIsContradiction marks pairs whose bounds are both strict (exclusive):
// exclusiveMaximum == exclusiveMinimum admits nothing (x < n and x > n
// can't both hold), unlike the inclusive maximum/minimum pair, where
// equal bounds are perfectly satisfiable at that single point.
type maxMinPair struct {
	max, min          string
	applies           PrimitiveType
	eqIsContradiction bool
}

var maxMinPairs = []maxMinPair{
	{"maximum", "minimum", Number, false},
	{"exclusiveMaximum", "exclusiveMinimum", Number, true},
	{"maxLength", "minLength", String, false},
	{"maxItems", "minItems", Array, false},
	{"maxProperties", "minProperties", Object, false},
}

// simplifyMaxMinPairs detects a max/min pair that has become
// self-contradictory (max < min, or max == min when the pair can never
// admit an equal endpoint) and collapses the schema: if some other type
// besides the pair's own type is still admitted, the contradictory type
// is simply removed from "type" (and its now-irrelevant bound keywords
// deleted); if the contradictory type was the only one admitted, the
// whole schema becomes the false schema.
func simplifyMaxMinPairs(slot *any) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}

	changed := false
	for _, pair := range maxMinPairs {
		maxVal, hasMax := getKeyword(obj, pair.max)
		minVal, hasMin := getKeyword(obj, pair.min)
		if !hasMax || !hasMin {
			continue
		}
		cmp, ok := compareNumeric(maxVal, minVal)
		if !ok {
			continue
		}
		if cmp > 0 {
			continue
		}
		if cmp == 0 && !pair.eqIsContradiction {
			continue
		}

		types := schemaTypeSet(obj)
		if types.HasOtherThan(pair.applies) {
			narrowed := types.Remove(pair.applies)
			setType(obj, narrowed)
			deleteKeyword(obj, pair.max)
			deleteKeyword(obj, pair.min)
			changed = true
		} else {
			return replaceWithFalse(slot)
		}
	}
	return changed
}
