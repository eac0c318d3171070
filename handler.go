package treelog

import (
	"fmt"
	"io"
)

// Handler is the sink Strategy: given the logger that admitted the event
// and the event itself, produce a side effect. A returned error aborts the
// remaining handlers of that call and surfaces to the Log caller wrapped
// in *HandlerError.
type Handler interface {
	Handle(l *Logger, ev *LogEvent) error
}

// Flusher is the optional flush half of the stream contract. StreamHandler
// flushes after a write only when its stream implements it.
type Flusher interface {
	Flush() error
}

// NoopHandler discards every event.
type NoopHandler struct{}

func (NoopHandler) Handle(*Logger, *LogEvent) error { return nil }

// StreamHandler writes events to a stream. With ApplyFormat set it writes
// the logger's formatted line, otherwise the bare message. UseColors
// selects colored or plain level rendering for the formatted path.
type StreamHandler struct {
	Stream      io.Writer
	Flush       bool
	UseColors   bool
	ApplyFormat bool
}

// NewStreamHandler returns a StreamHandler on w with Flush, UseColors and
// ApplyFormat all enabled.
func NewStreamHandler(w io.Writer) *StreamHandler {
	return &StreamHandler{Stream: w, Flush: true, UseColors: true, ApplyFormat: true}
}

func (h *StreamHandler) Handle(l *Logger, ev *LogEvent) error {
	msg := ev.Message
	if h.ApplyFormat {
		msg = l.formatMessage(ev, h.UseColors)
	}
	if _, err := io.WriteString(h.Stream, msg); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if h.Flush {
		if f, ok := h.Stream.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
		}
	}
	return nil
}
