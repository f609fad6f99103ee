package simplify

import "time"

// maxIterations bounds the number of whole-tree fixed-point passes the
// driver will run before giving up and returning the schema as-is. A
// single pass is a full post-order walk applying every rule once to every
// node; each rule is strictly reductive (fewer keywords, fewer
// sub-schemas, or a smaller TypeSet) except for one bounded one-time
// expansion (allOf flattening), so convergence in practice takes a
// handful of passes — 100 is headroom, not an expected case.
const maxIterations = 100

// nodeRule is the uniform signature every rewrite rule implements: given
// exclusive access to one schema slot, mutate it in place and report
// whether anything changed. Rules never need to know where in the tree
// they're running.
type nodeRule func(*any) bool

// ruleOrder is the fixed sequence node rules run in during each pass. The
// order matters: cheap structural cleanups run first so later rules (which
// may be more expensive, like allOf/anyOf intersection) see a smaller
// schema, and type-set pruning runs last so it benefits from every
// narrowing the earlier rules performed in this same pass.
var ruleOrder = []struct {
	name string
	rule nodeRule
}{
	{"dropOrphanedKeywords", dropOrphanedKeywords},
	{"dropNeutralKeywords", dropNeutralKeywords},
	{"simplifyRequired", simplifyRequired},
	{"narrowTypeFromConst", narrowTypeFromConst},
	{"narrowTypeFromEnum", narrowTypeFromEnum},
	{"simplifyMaxMinPairs", simplifyMaxMinPairs},
	{"simplifyItems", simplifyItems},
	{"simplifyAdditionalItems", simplifyAdditionalItems},
	{"simplifyAdditionalProperties", simplifyAdditionalProperties},
	{"simplifyPropertyNames", simplifyPropertyNames},
	{"flattenAllOf", flattenAllOf},
	{"simplifyAllOf", simplifyAllOf},
	{"simplifyAnyOf", simplifyAnyOf},
	{"simplifyConditional", simplifyConditional},
	{"pruneKeywordsForType", pruneKeywordsForType},
	{"canonicalizeType", canonicalizeType},
}

// driver walks the whole schema tree to a fixed point, recording rule
// invocations to sink. It returns whether the tree changed at all across
// every pass, and whether it stopped because it hit the iteration cap
// rather than because it converged.
func driver(root *any, sink Sink, iterations int) (changed bool, hitCap bool) {
	for i := 0; i < iterations; i++ {
		passChanged := walkOnce(root, sink)
		changed = changed || passChanged
		if !passChanged {
			return changed, false
		}
	}
	return changed, true
}

// walkOnce performs one post-order pass over the whole tree: every
// sub-schema is simplified before the node that contains it, so a rule
// running at a parent always sees already-simplified children.
func walkOnce(slot *any, sink Sink) bool {
	changed := descendChildren(slot, sink)

	if !isObjectSchema(*slot) {
		return changed
	}
	for _, entry := range ruleOrder {
		before := deepCopy(*slot)
		start := time.Now()
		if entry.rule(slot) {
			elapsed := time.Since(start)
			changed = true
			if sink != nil {
				sink.Record(RuleRecord{Rule: entry.name, Before: before, After: deepCopy(*slot), Changed: true, Elapsed: elapsed})
			}
			if !isObjectSchema(*slot) {
				return changed
			}
		}
	}
	return changed
}

// descendChildren recurses into every direct, array-valued, and
// map-valued sub-schema keyword of an object schema, simplifying each one
// before the parent's own rules run.
func descendChildren(slot *any, sink Sink) bool {
	obj, ok := asObject(*slot)
	if !ok {
		return false
	}
	changed := false

	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		switch {
		case keywordsWithDirectSubschemas[key]:
			child := pair.Value
			if walkOnce(&child, sink) {
				obj.Set(key, child)
				changed = true
			}
		case keywordsWithArraySubschemas[key]:
			arr, isArr := pair.Value.([]any)
			if !isArr {
				if key == "items" {
					child := pair.Value // single-schema form
					if walkOnce(&child, sink) {
						obj.Set(key, child)
						changed = true
					}
				}
				continue
			}
			localChanged := false
			for i := range arr {
				item := arr[i]
				if walkOnce(&item, sink) {
					arr[i] = item
					localChanged = true
				}
			}
			if localChanged {
				obj.Set(key, arr)
				changed = true
			}
		case keywordsWithMapSubschemas[key]:
			m, isMap := pair.Value.(*orderedMap)
			if !isMap {
				continue
			}
			for inner := m.Oldest(); inner != nil; inner = inner.Next() {
				if key == "dependencies" {
					if _, isArr := inner.Value.([]any); isArr {
						continue // property-dependency form, not a schema
					}
				}
				child := inner.Value
				if walkOnce(&child, sink) {
					m.Set(inner.Key, child)
					changed = true
				}
			}
		}
	}
	return changed
}
