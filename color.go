package treelog

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Colors maps named levels to their display style. A nil or missing entry
// renders plain text; so does any environment where the color package
// disables itself (NO_COLOR, not a terminal). Color failures never
// surface as errors.
type Colors map[Level]*color.Color

// DefaultColors returns a fresh copy of the built-in palette.
func DefaultColors() Colors {
	return Colors{
		LevelDebug:    color.New(color.FgBlue),
		LevelInfo:     color.New(color.FgCyan),
		LevelWarning:  color.New(color.FgYellow),
		LevelError:    color.New(color.FgRed),
		LevelCritical: color.New(color.FgRed, color.BgYellow, color.Bold, color.Underline, color.BlinkSlow),
	}
}

func (cs Colors) clone() Colors {
	out := make(Colors, len(cs))
	for lvl, c := range cs {
		out[lvl] = c
	}
	return out
}

// displayWidth is the width of the longest named level, CRITICAL.
const displayWidth = 8

// displayLevel renders a level for output: the canonical name uppercased
// and padded to displayWidth, wrapped in the palette style for named
// levels when colored is set. Unnamed levels render as their decimal
// value, padded, never colored.
func displayLevel(lvl Level, cs Colors, colored bool) string {
	padded := fmt.Sprintf("%-*s", displayWidth, strings.ToUpper(lvl.String()))
	if colored && lvl.known() {
		if c := cs[lvl]; c != nil {
			return c.Sprint(padded)
		}
	}
	return padded
}

// DisplayLevel renders a level the way this logger's formatted output
// shows it, palette style included.
func (l *Logger) DisplayLevel(lvl Level) string {
	return displayLevel(lvl, l.colors, true)
}

// SetColor changes the display style for one named level. Setting nil
// turns that level plain.
func (l *Logger) SetColor(lvl Level, c *color.Color) {
	if l.colors == nil {
		l.colors = make(Colors)
	}
	l.colors[lvl] = c
}
