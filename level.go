package treelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is an integer-backed severity. Values outside the named set are
// legal; threshold comparison is purely numeric, so custom severities
// order correctly against the named ones.
type Level int

const (
	LevelDebug    Level = 10
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50

	LevelWarn  = LevelWarning
	LevelFatal = LevelCritical
)

// DefaultThreshold is the threshold a root logger starts with.
const DefaultThreshold = LevelWarning

// Levelable is anything accepted where a level is required: a Level, any
// integer or float kind, a numeric string, a level name ("debug", "warn",
// "FATAL", case-insensitive), or a value with a string form (fmt.Stringer,
// error). Convert with ToLevel.
type Levelable = any

var levelNames = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warning":  LevelWarning,
	"warn":     LevelWarning,
	"error":    LevelError,
	"critical": LevelCritical,
	"fatal":    LevelCritical,
}

// String returns the canonical lowercase name for named levels and the
// decimal value for everything else.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	default:
		return strconv.Itoa(int(l))
	}
}

func (l Level) known() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return true
	}
	return false
}

// ToLevel converts a Levelable to a Level. A Level passes through
// unchanged, integers and numeric strings matching a named value
// canonicalize, and names resolve case-insensitively with warn/fatal as
// aliases. Values that only make sense numerically (e.g. 35, "35")
// convert when allowRawInt is set and fail with ErrInvalidLevel
// otherwise. Everything else fails regardless of the flag.
func ToLevel(value Levelable, allowRawInt bool) (Level, error) {
	switch v := value.(type) {
	case Level:
		return v, nil
	case int:
		return intLevel(v, allowRawInt, value)
	case int8:
		return intLevel(int(v), allowRawInt, value)
	case int16:
		return intLevel(int(v), allowRawInt, value)
	case int32:
		return intLevel(int(v), allowRawInt, value)
	case int64:
		return intLevel(int(v), allowRawInt, value)
	case uint:
		return intLevel(int(v), allowRawInt, value)
	case uint8:
		return intLevel(int(v), allowRawInt, value)
	case uint16:
		return intLevel(int(v), allowRawInt, value)
	case uint32:
		return intLevel(int(v), allowRawInt, value)
	case uint64:
		return intLevel(int(v), allowRawInt, value)
	case float32:
		return intLevel(int(v), allowRawInt, value)
	case float64:
		return intLevel(int(v), allowRawInt, value)
	case string:
		return parseLevel(v, allowRawInt, value)
	case fmt.Stringer:
		return parseLevel(v.String(), allowRawInt, value)
	case error:
		return parseLevel(v.Error(), allowRawInt, value)
	default:
		return 0, invalidLevel(value)
	}
}

func intLevel(n int, allowRawInt bool, value Levelable) (Level, error) {
	lvl := Level(n)
	if lvl.known() || allowRawInt {
		return lvl, nil
	}
	return 0, invalidLevel(value)
}

func parseLevel(s string, allowRawInt bool, value Levelable) (Level, error) {
	if lvl, ok := levelNames[strings.ToLower(s)]; ok {
		return lvl, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return intLevel(n, allowRawInt, value)
	}
	return 0, invalidLevel(value)
}

func invalidLevel(value Levelable) error {
	return fmt.Errorf("%w: %v (must be a Level, an integer, or a level name)", ErrInvalidLevel, value)
}
