package parse

// Option customizes Build via functional arguments.
// Option constructors validate eagerly and panic on meaningless input
// (nil callbacks); Build itself never fails.
type Option func(*config)

// config holds resolved Build parameters.
type config struct {
	dropSelfLoops bool
	onSkipped     func(lineNo int, line string)
}

// defaultConfig returns the lenient defaults: self-loops accepted,
// skipped lines unreported.
func defaultConfig() config {
	return config{
		dropSelfLoops: false,
		onSkipped:     func(int, string) {},
	}
}

// WithoutSelfLoops ignores edges whose two tokens are identical.
// The named node is still created, with an empty neighbor list unless
// other lines connect it.
func WithoutSelfLoops() Option {
	return func(c *config) { c.dropSelfLoops = true }
}

// WithOnSkippedLine registers a callback invoked for every non-blank
// line that contributed no edge (wrong token count, or a self-loop under
// WithoutSelfLoops). lineNo is 1-based. Panics on nil fn.
func WithOnSkippedLine(fn func(lineNo int, line string)) Option {
	if fn == nil {
		panic("parse: WithOnSkippedLine(nil)")
	}
	return func(c *config) { c.onSkipped = fn }
}
