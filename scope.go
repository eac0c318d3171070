package treelog

import "sync"

// IndentScope increments the logger's indent and returns the matching
// restore. Defer the restore; it decrements exactly once no matter how
// often it is called or how the scope body exits.
//
//	defer log.IndentScope()()
func (l *Logger) IndentScope() (restore func()) {
	l.indent++
	var once sync.Once
	return func() {
		once.Do(func() { l.indent-- })
	}
}

// ThresholdScope overrides the logger's threshold and returns the restore
// that puts the previous value back, exactly once.
func (l *Logger) ThresholdScope(lvl Level) (restore func()) {
	prev := l.threshold
	l.threshold = lvl
	var once sync.Once
	return func() {
		once.Do(func() { l.threshold = prev })
	}
}
