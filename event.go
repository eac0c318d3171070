package treelog

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// LogEvent is a record of one log occurrence. It is created fresh per log
// call and never mutated afterwards; handlers receive it by reference and
// must not modify it.
type LogEvent struct {
	Message    string
	Level      Level
	Time       time.Time
	Indent     int
	FrameDepth int
	Line       int
	Traceback  bool
	Err        error
	Stack      []byte
}

// logConfig collects per-call options for Log and friends.
type logConfig struct {
	traceback bool
	err       error
	skip      int
}

// LogOption adjusts a single log call.
type LogOption func(*logConfig)

// WithTraceback asks for a stack capture on the event. Attach the error
// being reported with WithError; a traceback without one produces a
// diagnostic warning.
func WithTraceback() LogOption {
	return func(c *logConfig) { c.traceback = true }
}

// WithError attaches err to the event as its error context.
func WithError(err error) LogOption {
	return func(c *logConfig) { c.err = err }
}

// WithCallerSkip widens the call-site lookup by n frames so that wrappers
// around Log report their own caller's line.
func WithCallerSkip(n int) LogOption {
	return func(c *logConfig) { c.skip += n }
}

func newLogConfig(opts []LogOption) logConfig {
	var cfg logConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewEvent builds a LogEvent for this logger without dispatching it:
// message is stringified now, the timestamp comes from the logger's clock,
// and the call site of the NewEvent call is captured for {line}.
func (l *Logger) NewEvent(level Levelable, message any, opts ...LogOption) (*LogEvent, error) {
	cfg := newLogConfig(opts)
	lvl, err := ToLevel(level, true)
	if err != nil {
		return nil, err
	}
	depth := 1 + cfg.skip
	return l.newEvent(lvl, message, cfg, callSite(depth), depth), nil
}

func (l *Logger) newEvent(lvl Level, message any, cfg logConfig, line, depth int) *LogEvent {
	ev := &LogEvent{
		Message:    stringify(message),
		Level:      lvl,
		Time:       l.now(),
		Indent:     l.indent,
		FrameDepth: depth,
		Line:       line,
		Traceback:  cfg.traceback,
		Err:        cfg.err,
	}
	if ev.Traceback {
		ev.Stack = debug.Stack()
	}
	return ev
}

func stringify(message any) string {
	switch m := message.(type) {
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	case error:
		return m.Error()
	default:
		return fmt.Sprint(message)
	}
}

// callSite resolves the line of the caller skip frames above the function
// that invoked callSite. Returns 0 when the stack is not that deep.
func callSite(skip int) int {
	_, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return 0
	}
	return line
}
