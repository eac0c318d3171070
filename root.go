package treelog

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Registry guards root creation: at most one parentless logger may exist
// per registry. The package keeps a default registry for the common
// process-wide case; tests that need isolation create their own.
type Registry struct {
	mu   sync.Mutex
	root *Logger
}

func NewRegistry() *Registry { return &Registry{} }

// NewRoot creates the registry's root logger, named "root", with the
// default format, threshold, palette and handlers unless options say
// otherwise. A second call fails with ErrDuplicateRoot until Reset.
func (r *Registry) NewRoot(opts ...Option) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.root != nil {
		return nil, fmt.Errorf("%w; use it or create a child from it", ErrDuplicateRoot)
	}
	root := &Logger{
		name:      "root",
		id:        uuid.New(),
		format:    DefaultFormat,
		threshold: DefaultThreshold,
		enabled:   true,
		colors:    DefaultColors(),
		handlers:  defaultHandlers(),
		inherit:   DefaultInheritPolicy(),
	}
	cfg := newConfig(opts)
	cfg.applyTo(root)
	r.root = root
	return root, nil
}

// Root returns the registry's root logger, or nil before NewRoot.
func (r *Registry) Root() *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// Reset forgets the root so NewRoot may run again. Existing loggers keep
// working; they just lose their claim on the registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = nil
}

var defaultRegistry = NewRegistry()

// NewRoot creates the process-wide root logger on the default registry.
func NewRoot(opts ...Option) (*Logger, error) {
	return defaultRegistry.NewRoot(opts...)
}

// Root returns the process-wide root logger; panic if unset to surface
// misconfig early.
func Root() *Logger {
	l := defaultRegistry.Root()
	if l == nil {
		panic("treelog: root logger not created. Call treelog.NewRoot(...) first")
	}
	return l
}

// ResetRoot clears the default registry. Intended for tests.
func ResetRoot() { defaultRegistry.Reset() }

// defaultHandlerFactory is consulted when a logger needs handlers and none
// were inherited or given. Replace it to change what "default handlers"
// means process-wide.
var defaultHandlerFactory func() []Handler

// SetDefaultHandlerFactory registers the constructor used for default
// handlers. Pass nil to restore the built-in stderr stream handler.
func SetDefaultHandlerFactory(f func() []Handler) {
	defaultHandlerFactory = f
}

func defaultHandlers() []Handler {
	if defaultHandlerFactory != nil {
		return defaultHandlerFactory()
	}
	return []Handler{NewStreamHandler(os.Stderr)}
}
