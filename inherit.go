package treelog

// InheritPolicy declares, field by field, whether a child copies the
// parent's value at creation or starts from the package default. It is a
// one-time copy: later parent mutations never reach the child. Indent is
// deliberately absent; it is runtime state and every logger starts at 0.
type InheritPolicy struct {
	Format    bool
	Threshold bool
	Handlers  bool
	Colors    bool
	Clock     bool
	Filter    bool
	Propagate bool
	Enabled   bool
}

// DefaultInheritPolicy copies the configuration a child usually wants from
// its parent and leaves propagate and enabled at their defaults (false and
// true).
func DefaultInheritPolicy() InheritPolicy {
	return InheritPolicy{
		Format:    true,
		Threshold: true,
		Handlers:  true,
		Colors:    true,
		Clock:     true,
		Filter:    true,
	}
}
