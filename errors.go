package treelog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLevel reports a value that cannot be converted to a Level.
	ErrInvalidLevel = errors.New("treelog: invalid level")

	// ErrDuplicateRoot reports an attempt to create a second parentless
	// logger in the same registry.
	ErrDuplicateRoot = errors.New("treelog: root logger already exists")
)

// HandlerError wraps the first failure returned by a handler during
// dispatch. Remaining handlers for that call are not invoked.
type HandlerError struct {
	Handler Handler
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("treelog: handler %T failed: %v", e.Handler, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
