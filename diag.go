package treelog

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Diagnostics are recoverable engine warnings, like a traceback requested
// with no error attached or a root logger asked to propagate. They are
// emitted rather than returned and never interrupt a log call.

var diagFunc atomic.Pointer[func(msg string)]

// SetDiagnosticFunc replaces the diagnostic sink. Pass nil to restore the
// default, which writes "treelog: <msg>" to stderr. The sink must be safe
// for concurrent use if loggers are shared across goroutines.
func SetDiagnosticFunc(f func(msg string)) {
	if f == nil {
		diagFunc.Store(nil)
		return
	}
	diagFunc.Store(&f)
}

func diag(msg string) {
	if p := diagFunc.Load(); p != nil {
		(*p)(msg)
		return
	}
	fmt.Fprintln(os.Stderr, "treelog: "+msg)
}
