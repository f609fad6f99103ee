package simplify

// Simplify returns a semantics-preserving rewrite of schema: a schema that
// accepts exactly the instances the original accepts, with redundant
// structure removed. schema is not modified; Simplify works on a deep copy.
func Simplify(schema any, opts ...Option) any {
	out := deepCopy(schema)
	SimplifyInPlace(&out, opts...)
	return out
}

// SimplifyInPlace rewrites *schema in place. It takes exclusive ownership
// of the value for the duration of the call — nothing else may read or
// write *schema, or any value reachable from it, concurrently.
func SimplifyInPlace(schema *any, opts ...Option) {
	s := NewSimplifier(opts...)
	_, hitCap := driver(schema, s.effectiveSink(), s.effectiveIterations())
	if hitCap {
		warnNonConvergence(s.effectiveSink(), s.effectiveIterations())
	}
}
