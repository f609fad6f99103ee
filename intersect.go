package simplify

// IntersectStatus reports how faithfully intersect combined two schemas.
type IntersectStatus int

const (
	// Complete means the result schema accepts exactly the instances both
	// inputs would accept together.
	Complete IntersectStatus = iota
	// Partial means at least one keyword pair had no exact merge: src's
	// value for it was folded into a residual allOf branch on the result
	// instead, so the result still accepts exactly the instances both
	// inputs accept, but src was not fully absorbed into dst's own keywords.
	Partial
)

// IntersectResult is what intersect reports about a merge.
type IntersectResult struct {
	Status  IntersectStatus
	Changed bool
}

// intersect merges src into *dst in place so that *dst accepts only
// instances both the original *dst and src would accept (see
// IntersectStatus for how unmerged keywords are carried). It is the sole two-schema combinator the rule
// layer builds on — allOf-simplification is its main caller.
func intersect(dst *any, src any) IntersectResult {
	if isFalseSchema(*dst) {
		return IntersectResult{Status: Complete, Changed: false}
	}
	if isFalseSchema(src) {
		changed := replaceWithFalse(dst)
		return IntersectResult{Status: Complete, Changed: changed}
	}
	if isTrueSchema(src) {
		return IntersectResult{Status: Complete, Changed: false}
	}
	if isTrueSchema(*dst) {
		*dst = deepCopy(src)
		return IntersectResult{Status: Complete, Changed: true}
	}

	dstObj, dstOK := asObject(*dst)
	srcObj, srcOK := asObject(src)
	if !dstOK || !srcOK {
		// Shouldn't happen given the boolean-schema cases above, but stay
		// conservative rather than panic.
		return IntersectResult{Status: Partial, Changed: false}
	}

	changed := false
	status := Complete

	mark := func(didChange bool) {
		changed = changed || didChange
	}

	if v, ok := getKeyword(srcObj, "type"); ok {
		_ = v
		merged := schemaTypeSet(dstObj) & schemaTypeSet(srcObj)
		if merged.IsEmpty() {
			return IntersectResult{Status: Complete, Changed: replaceWithFalse(dst)}
		}
		mark(setType(dstObj, merged))
	}

	if srcConst, ok := getKeyword(srcObj, "const"); ok {
		if dstConst, ok := getKeyword(dstObj, "const"); ok {
			if !deepEqualJSON(dstConst, srcConst) {
				return IntersectResult{Status: Complete, Changed: replaceWithFalse(dst)}
			}
		} else {
			setKeyword(dstObj, "const", deepCopy(srcConst))
			mark(true)
		}
	}

	if srcEnum, ok := getKeyword(srcObj, "enum"); ok {
		srcList, _ := srcEnum.([]any)
		if dstEnum, ok := getKeyword(dstObj, "enum"); ok {
			dstList, _ := dstEnum.([]any)
			var kept []any
			for _, v := range dstList {
				for _, w := range srcList {
					if deepEqualJSON(v, w) {
						kept = append(kept, v)
						break
					}
				}
			}
			if len(kept) == 0 {
				return IntersectResult{Status: Complete, Changed: replaceWithFalse(dst)}
			}
			setKeyword(dstObj, "enum", kept)
			mark(true)
		} else {
			setKeyword(dstObj, "enum", deepCopy(srcList))
			mark(true)
		}
	}

	for _, pair := range []struct {
		tighter string // "max" or "min"
		bound   string
	}{
		{"max", "maximum"},
		{"min", "minimum"},
		{"max", "exclusiveMaximum"},
		{"min", "exclusiveMinimum"},
		{"max", "maxLength"},
		{"min", "minLength"},
		{"max", "maxItems"},
		{"min", "minItems"},
		{"max", "maxProperties"},
		{"min", "minProperties"},
	} {
		if mergeTighterBound(dstObj, srcObj, pair.tighter, pair.bound) {
			mark(true)
		}
	}

	var residual *orderedMap
	if srcMult, ok := getKeyword(srcObj, "multipleOf"); ok {
		if dstMult, ok := getKeyword(dstObj, "multipleOf"); ok {
			dr, _ := toRat(dstMult)
			sr, _ := toRat(srcMult)
			if dr != nil && sr != nil && !isMultipleOf(sr, dr) && !isMultipleOf(dr, sr) {
				if residual == nil {
					residual = newOrderedMap()
				}
				setKeyword(residual, "multipleOf", deepCopy(srcMult))
				status = Partial
			} else if sr != nil && dr != nil && isMultipleOf(sr, dr) {
				setKeyword(dstObj, "multipleOf", deepCopy(srcMult))
				mark(true)
			}
		} else {
			setKeyword(dstObj, "multipleOf", deepCopy(srcMult))
			mark(true)
		}
	}

	if mergeRequired(dstObj, srcObj) {
		mark(true)
	}

	if st, didChange := mergeObjectShape(dstObj, srcObj); st == Partial {
		status = Partial
		mark(didChange)
	} else {
		mark(didChange)
	}

	for _, key := range []string{"pattern", "format", "contentEncoding", "contentMediaType"} {
		if srcVal, ok := getKeyword(srcObj, key); ok {
			if dstVal, ok := getKeyword(dstObj, key); ok {
				if !deepEqualJSON(dstVal, srcVal) {
					if residual == nil {
						residual = newOrderedMap()
					}
					setKeyword(residual, key, deepCopy(srcVal))
					status = Partial
				}
			} else {
				setKeyword(dstObj, key, deepCopy(srcVal))
				mark(true)
			}
		}
	}

	for _, key := range []string{"propertyNames", "contains"} {
		if srcVal, ok := getKeyword(srcObj, key); ok {
			if dstVal, ok := getKeyword(dstObj, key); ok {
				sub := dstVal
				res := intersect(&sub, srcVal)
				setKeyword(dstObj, key, sub)
				if res.Status == Partial {
					status = Partial
				}
				mark(res.Changed)
			} else {
				setKeyword(dstObj, key, deepCopy(srcVal))
				mark(true)
			}
		}
	}

	// Keywords without an exact merge rule: adopt if absent, otherwise fold
	// src's differing value into a residual allOf branch so nothing is lost,
	// and flag the result Partial.
	fallback := []string{
		"items", "additionalItems", "allOf", "anyOf", "oneOf", "not", "if",
		"then", "else", "dependencies", "uniqueItems",
	}
	for _, key := range fallback {
		srcVal, ok := getKeyword(srcObj, key)
		if !ok {
			continue
		}
		if dstVal, ok := getKeyword(dstObj, key); ok {
			if deepEqualJSON(dstVal, srcVal) {
				continue
			}
			if residual == nil {
				residual = newOrderedMap()
			}
			setKeyword(residual, key, deepCopy(srcVal))
			status = Partial
		} else {
			setKeyword(dstObj, key, deepCopy(srcVal))
			mark(true)
		}
	}
	if residual != nil {
		appendAllOf(dstObj, residual)
		mark(true)
	}

	return IntersectResult{Status: status, Changed: changed}
}

// mergeTighterBound combines a single max- or min-type keyword, keeping
// whichever side's value is tighter. "maximum" and "exclusiveMaximum" are
// merged as two independent numeric bounds, each compared only against
// its own counterpart on the other side — Draft 6/7 gives them no other
// relationship (unlike Draft 4, where exclusiveMaximum was a boolean
// modifier on maximum). Reports whether dst changed.
func mergeTighterBound(dstObj, srcObj *orderedMap, kind, bound string) bool {
	srcVal, srcPresent := getKeyword(srcObj, bound)
	if !srcPresent {
		return false
	}
	dstVal, dstPresent := getKeyword(dstObj, bound)
	if !dstPresent {
		setKeyword(dstObj, bound, deepCopy(srcVal))
		return true
	}
	cmp, ok := compareNumeric(dstVal, srcVal)
	if !ok {
		return false
	}
	wantSrcTighter := (kind == "max" && cmp > 0) || (kind == "min" && cmp < 0)
	if wantSrcTighter {
		setKeyword(dstObj, bound, deepCopy(srcVal))
		return true
	}
	return false
}

// mergeRequired unions two "required" arrays into dst.
func mergeRequired(dstObj, srcObj *orderedMap) bool {
	srcVal, ok := getKeyword(srcObj, "required")
	if !ok {
		return false
	}
	srcList, _ := srcVal.([]any)
	dstVal, hadDst := getKeyword(dstObj, "required")
	dstList, _ := dstVal.([]any)
	seen := map[string]bool{}
	var merged []any
	for _, v := range dstList {
		if s, ok := v.(string); ok && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	changed := false
	for _, v := range srcList {
		if s, ok := v.(string); ok && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
			changed = true
		}
	}
	if !hadDst && len(merged) > 0 {
		changed = true
	}
	if changed {
		setKeyword(dstObj, "required", merged)
	}
	return changed
}

// objectShapeKeywords are the three keywords that jointly decide which
// keys an object schema constrains, and how: "properties" names specific
// keys, "patternProperties" matches keys by regex, and
// "additionalProperties" governs everything neither of those covers.
var objectShapeKeywords = []string{"properties", "patternProperties", "additionalProperties"}

func hasAnyKeyword(obj *orderedMap, keys ...string) bool {
	for _, k := range keys {
		if _, ok := getKeyword(obj, k); ok {
			return true
		}
	}
	return false
}

// mergeObjectShape merges the keywords that describe an object schema's
// key space. "additionalProperties"/"patternProperties" can't be merged
// one keyword at a time alongside "properties": whether a key counts as
// "additional" depends on the schema's own "properties", so copying src's
// "additionalProperties" into dst while leaving dst's "properties"
// untouched (or vice versa) can silently move a key out from under the
// constraint that used to govern it. When neither side declares
// "additionalProperties"/"patternProperties" there is no such interaction
// — every unlisted key is unconstrained on both sides — so "properties"
// merges key by key as usual. Otherwise the whole shape is merged only
// when src doesn't touch it at all (no-op) or dst doesn't constrain shape
// yet (straight adoption); any other combination is folded into a
// residual allOf arm, leaving dst's own shape keywords exactly as they
// were, per the spec's "properties unmerged ⇒ Partial" rule.
func mergeObjectShape(dstObj, srcObj *orderedMap) (IntersectStatus, bool) {
	if !hasAnyKeyword(dstObj, "additionalProperties", "patternProperties") &&
		!hasAnyKeyword(srcObj, "additionalProperties", "patternProperties") {
		return mergePlainProperties(dstObj, srcObj)
	}

	if !hasAnyKeyword(srcObj, objectShapeKeywords...) {
		return Complete, false
	}
	if !hasAnyKeyword(dstObj, objectShapeKeywords...) {
		for _, key := range objectShapeKeywords {
			if v, ok := getKeyword(srcObj, key); ok {
				setKeyword(dstObj, key, deepCopy(v))
			}
		}
		return Complete, true
	}

	residual := newOrderedMap()
	for _, key := range objectShapeKeywords {
		if v, ok := getKeyword(srcObj, key); ok {
			setKeyword(residual, key, deepCopy(v))
		}
	}
	appendAllOf(dstObj, residual)
	return Partial, true
}

// mergePlainProperties recursively intersects "properties" maps key by
// key. Safe only when neither side has "additionalProperties" or
// "patternProperties" (checked by the caller), since then a key absent
// from one side's "properties" is unconstrained there regardless of which
// side's properties map it ends up listed in.
func mergePlainProperties(dstObj, srcObj *orderedMap) (IntersectStatus, bool) {
	srcVal, ok := getKeyword(srcObj, "properties")
	if !ok {
		return Complete, false
	}
	srcProps, _ := srcVal.(*orderedMap)
	if srcProps == nil {
		return Complete, false
	}
	dstVal, hadDst := getKeyword(dstObj, "properties")
	var dstProps *orderedMap
	if hadDst {
		dstProps, _ = dstVal.(*orderedMap)
	}
	if dstProps == nil {
		dstProps = newOrderedMap()
	}
	status := Complete
	changed := !hadDst
	for pair := srcProps.Oldest(); pair != nil; pair = pair.Next() {
		if existing, ok := dstProps.Get(pair.Key); ok {
			sub := existing
			res := intersect(&sub, pair.Value)
			dstProps.Set(pair.Key, sub)
			if res.Status == Partial {
				status = Partial
			}
			if res.Changed {
				changed = true
			}
		} else {
			dstProps.Set(pair.Key, deepCopy(pair.Value))
			changed = true
		}
	}
	if changed {
		setKeyword(dstObj, "properties", dstProps)
	}
	return status, changed
}

// appendAllOf pushes a residual schema into dst's "allOf" list, creating
// the list if necessary.
func appendAllOf(dstObj *orderedMap, residual any) {
	existing, ok := getKeyword(dstObj, "allOf")
	var list []any
	if ok {
		list, _ = existing.([]any)
	}
	list = append(list, residual)
	setKeyword(dstObj, "allOf", list)
}

// deepCopy clones a decoded JSON value so mutating the copy never aliases
// the original (needed whenever intersect adopts a keyword wholesale from
// src, since src may still be referenced elsewhere in the tree being
// walked).
func deepCopy(v any) any {
	switch val := v.(type) {
	case *orderedMap:
		out := newOrderedMap()
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, deepCopy(pair.Value))
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
