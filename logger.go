package treelog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trickstertwo/xclock"
)

// Logger is a node in the logging tree. It owns its configuration
// (format, threshold, enabled flag, handlers, indent, propagate flag) and
// the filtering, formatting and dispatch pipeline. Children are created
// with Child and copy configuration from the parent once, at creation;
// only the child keeps a reference up the tree, never the reverse.
//
// A Logger is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize mutation and log calls themselves; only
// root creation through a Registry is guarded.
type Logger struct {
	name      string
	parent    *Logger
	id        uuid.UUID
	propagate bool
	indent    int
	format    string
	threshold Level
	enabled   bool
	colors    Colors
	handlers  []Handler
	clock     xclock.Clock
	filter    Filter
	inherit   InheritPolicy
}

// Filter overrides ShouldLog for custom event filtering.
type Filter func(*Logger, *LogEvent) bool

// Child creates a new logger under l. Configuration is copied from l
// according to the inherit policy (WithInheritPolicy, defaulting to
// DefaultInheritPolicy); explicit options override the copied values.
// Two calls with the same name return two distinct loggers.
func (l *Logger) Child(name string, opts ...Option) *Logger {
	cfg := newConfig(opts)
	pol := DefaultInheritPolicy()
	if cfg.policy != nil {
		pol = *cfg.policy
	}
	child := &Logger{
		name:    name,
		parent:  l,
		id:      uuid.New(),
		inherit: pol,
		enabled: true,
	}
	if pol.Format {
		child.format = l.format
	} else {
		child.format = DefaultFormat
	}
	if pol.Threshold {
		child.threshold = l.threshold
	} else {
		child.threshold = DefaultThreshold
	}
	if pol.Handlers {
		child.handlers = append([]Handler(nil), l.handlers...)
	} else {
		child.handlers = defaultHandlers()
	}
	if pol.Colors {
		child.colors = l.colors.clone()
	} else {
		child.colors = DefaultColors()
	}
	if pol.Clock {
		child.clock = l.clock
	}
	if pol.Filter {
		child.filter = l.filter
	}
	if pol.Propagate {
		child.propagate = l.propagate
	}
	if pol.Enabled {
		child.enabled = l.enabled
	}
	cfg.applyTo(child)
	return child
}

func (l *Logger) String() string { return "<Logger " + l.name + ">" }

// Accessors. Mutators replace the field outright; none of them touch the
// parent or existing children.

func (l *Logger) Name() string    { return l.name }
func (l *Logger) Parent() *Logger { return l.parent }
func (l *Logger) ID() uuid.UUID   { return l.id }

func (l *Logger) InheritPolicy() InheritPolicy { return l.inherit }

func (l *Logger) Propagate() bool     { return l.propagate }
func (l *Logger) SetPropagate(p bool) { l.propagate = p }

func (l *Logger) Indent() int     { return l.indent }
func (l *Logger) SetIndent(n int) { l.indent = n }

func (l *Logger) Format() string     { return l.format }
func (l *Logger) SetFormat(f string) { l.format = f }

func (l *Logger) Threshold() Level     { return l.threshold }
func (l *Logger) SetThreshold(t Level) { l.threshold = t }

func (l *Logger) Enabled() bool     { return l.enabled }
func (l *Logger) SetEnabled(e bool) { l.enabled = e }

func (l *Logger) Handlers() []Handler {
	return append([]Handler(nil), l.handlers...)
}

func (l *Logger) SetHandlers(hs ...Handler) {
	l.handlers = append([]Handler(nil), hs...)
}

func (l *Logger) AddHandler(h Handler) {
	l.handlers = append(l.handlers, h)
}

func (l *Logger) Colors() Colors      { return l.colors.clone() }
func (l *Logger) SetColors(cs Colors) { l.colors = cs.clone() }

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// IsEnabledFor reports whether a message at the given level passes the
// threshold; equality counts as enabled. A value that fails strict
// conversion is retried permissively with a diagnostic warning; a value
// that cannot be read as a level at all reports false after a diagnostic.
func (l *Logger) IsEnabledFor(level Levelable) bool {
	lvl, err := ToLevel(level, false)
	if err != nil {
		lvl, err = ToLevel(level, true)
		if err != nil {
			diag(fmt.Sprintf("cannot compare level %v: not a known level or integer", level))
			return false
		}
		diag(fmt.Sprintf("level %v is not a known level; comparing numerically", level))
	}
	return lvl >= l.threshold
}

// ShouldLog reports whether ev would be dispatched to handlers. The
// default defers to IsEnabledFor on the event's level; WithFilter
// replaces the decision.
func (l *Logger) ShouldLog(ev *LogEvent) bool {
	if l.filter != nil {
		return l.filter(l, ev)
	}
	return l.IsEnabledFor(ev.Level)
}

// Log runs one message through the gating and dispatch pipeline.
//
// A disabled logger returns (nil, nil) without side effects. Otherwise the
// event is built and returned even when the threshold suppresses it, so
// callers can inspect what would have been logged. With propagate set the
// parent runs its own pipeline on the same message first, independent of
// this logger's threshold. Handler failures abort remaining handlers and
// come back wrapped in *HandlerError; an unconvertible level comes back
// as ErrInvalidLevel.
func (l *Logger) Log(level Levelable, message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(level, message, cfg, callSite(depth), depth)
}

// Level convenience methods, same shape and return contract as Log.

func (l *Logger) Debug(message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(LevelDebug, message, cfg, callSite(depth), depth)
}

func (l *Logger) Info(message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(LevelInfo, message, cfg, callSite(depth), depth)
}

func (l *Logger) Warning(message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(LevelWarning, message, cfg, callSite(depth), depth)
}

func (l *Logger) Error(message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(LevelError, message, cfg, callSite(depth), depth)
}

func (l *Logger) Critical(message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	depth := 1 + cfg.skip
	return l.log(LevelCritical, message, cfg, callSite(depth), depth)
}

// log runs the pipeline: enabled gate, event construction, propagation,
// threshold gate, handler dispatch. line and depth carry the call site
// captured at the public entry point so propagation keeps reporting the
// original caller.
func (l *Logger) log(level Levelable, message any, cfg logConfig, line, depth int) (*LogEvent, error) {
	if !l.enabled {
		return nil, nil
	}
	lvl, err := ToLevel(level, true)
	if err != nil {
		return nil, err
	}
	ev := l.newEvent(lvl, message, cfg, line, depth)
	if ev.Traceback && ev.Err == nil {
		diag("traceback requested without an error attached")
	}
	if l.propagate {
		if l.parent == nil {
			diag("root logger should not propagate; set enabled to false to silence it instead")
		} else if _, perr := l.parent.log(lvl, message, cfg, line, depth); perr != nil {
			return ev, perr
		}
	}
	if !l.ShouldLog(ev) {
		return ev, nil
	}
	for _, h := range l.handlers {
		if herr := h.Handle(l, ev); herr != nil {
			return ev, &HandlerError{Handler: h, Err: herr}
		}
	}
	return ev, nil
}
