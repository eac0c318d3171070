package treelog

import (
	"fmt"
	"strings"
	"time"
)

// DefaultFormat is the template a root logger starts with.
const DefaultFormat = "[{name} {level} {time} line: {line}] {indent}{message}"

// indentUnit is repeated once per indent step in {indent}.
const indentUnit = "  "

func indentFor(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, n)
}

// FormatMessage expands the logger's format template for ev. Recognized
// placeholders are {name}, {level}, {time}, {line}, {indent} and
// {message}; anything else in braces stays verbatim. The result ends with
// a newline and carries the captured stack when the event asked for a
// traceback.
func (l *Logger) FormatMessage(ev *LogEvent) string {
	return l.formatMessage(ev, true)
}

func (l *Logger) formatMessage(ev *LogEvent, colored bool) string {
	r := strings.NewReplacer(
		"{name}", l.name,
		"{level}", displayLevel(ev.Level, l.colors, colored),
		"{time}", ev.Time.Format(time.RFC3339),
		"{line}", fmt.Sprintf("%05d", ev.Line),
		"{indent}", indentFor(ev.Indent),
		"{message}", ev.Message,
	)
	line := r.Replace(l.format)
	if !ev.Traceback {
		return line + "\n"
	}
	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	if ev.Err != nil {
		b.WriteString("error: ")
		b.WriteString(ev.Err.Error())
		b.WriteByte('\n')
	}
	b.Write(ev.Stack)
	return b.String()
}
