package treelog

import "github.com/trickstertwo/xclock"

// Option configures a logger at construction (Builder pattern, functional
// form). Options apply after inheritance, so an explicit option always
// wins over a copied parent value.
type Option func(*config)

type config struct {
	policy      *InheritPolicy
	format      *string
	threshold   *Level
	handlers    []Handler
	handlersSet bool
	propagate   *bool
	enabled     *bool
	indent      *int
	colors      Colors
	clock       xclock.Clock
	filter      Filter
	filterSet   bool
}

// WithInheritPolicy selects which fields a child copies from its parent.
func WithInheritPolicy(p InheritPolicy) Option {
	return func(c *config) { c.policy = &p }
}

// WithFormat sets the format template.
func WithFormat(format string) Option {
	return func(c *config) { c.format = &format }
}

// WithThreshold sets the severity threshold.
func WithThreshold(lvl Level) Option {
	return func(c *config) { c.threshold = &lvl }
}

// WithHandlers replaces the handler list.
func WithHandlers(hs ...Handler) Option {
	return func(c *config) {
		c.handlers = hs
		c.handlersSet = true
	}
}

// WithPropagate sets whether log calls are forwarded to the parent.
func WithPropagate(propagate bool) Option {
	return func(c *config) { c.propagate = &propagate }
}

// WithEnabled sets whether the logger acts on log calls at all.
func WithEnabled(enabled bool) Option {
	return func(c *config) { c.enabled = &enabled }
}

// WithIndent sets the starting indent.
func WithIndent(indent int) Option {
	return func(c *config) { c.indent = &indent }
}

// WithColors replaces the level display palette.
func WithColors(cs Colors) Option {
	return func(c *config) { c.colors = cs }
}

// WithClock sets the time source for event timestamps. The default is the
// process clock, xclock.Now.
func WithClock(clk xclock.Clock) Option {
	return func(c *config) { c.clock = clk }
}

// WithFilter installs a ShouldLog override.
func WithFilter(f Filter) Option {
	return func(c *config) {
		c.filter = f
		c.filterSet = true
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c *config) applyTo(l *Logger) {
	if c.policy != nil {
		l.inherit = *c.policy
	}
	if c.format != nil {
		l.format = *c.format
	}
	if c.threshold != nil {
		l.threshold = *c.threshold
	}
	if c.handlersSet {
		l.handlers = append([]Handler(nil), c.handlers...)
	}
	if c.propagate != nil {
		l.propagate = *c.propagate
	}
	if c.enabled != nil {
		l.enabled = *c.enabled
	}
	if c.indent != nil {
		l.indent = *c.indent
	}
	if c.colors != nil {
		l.colors = c.colors.clone()
	}
	if c.clock != nil {
		l.clock = c.clock
	}
	if c.filterSet {
		l.filter = c.filter
	}
}
