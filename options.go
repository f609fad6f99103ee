package simplify

// Simplifier holds configuration for running the rule engine: where rule
// invocations get reported, and how many whole-tree passes to allow
// before giving up. The zero value is ready to use (NopSink, the default
// iteration cap).
type Simplifier struct {
	sink       Sink
	iterations int
}

// Option configures a Simplifier.
type Option func(*Simplifier)

// WithSink installs a Sink to receive one RuleRecord per rule application
// that changed a schema node.
func WithSink(sink Sink) Option {
	return func(s *Simplifier) { s.sink = sink }
}

// WithMaxIterations overrides the whole-tree fixed-point iteration cap.
// Values <= 0 are ignored and leave the default in place.
func WithMaxIterations(n int) Option {
	return func(s *Simplifier) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// NewSimplifier builds a Simplifier with the given options applied over
// the defaults (NopSink, maxIterations whole-tree passes).
func NewSimplifier(opts ...Option) *Simplifier {
	s := &Simplifier{sink: NopSink{}, iterations: maxIterations}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simplifier) effectiveSink() Sink {
	if s == nil || s.sink == nil {
		return NopSink{}
	}
	return s.sink
}

func (s *Simplifier) effectiveIterations() int {
	if s == nil || s.iterations <= 0 {
		return maxIterations
	}
	return s.iterations
}
