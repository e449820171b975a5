package sqllog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes executed statements to a zerolog logger according to its
// Options. The zero value logs nothing.
type Logger struct {
	opts Options
	out  zerolog.Logger
}

// New returns a statement logger writing to out with the given options.
func New(out zerolog.Logger, opts Options) *Logger {
	return &Logger{opts: opts, out: out}
}

// Options returns the tuple the logger was built with.
func (l *Logger) Options() Options { return l.opts }

// Log records one executed statement. It is a no-op unless ShowSQL is set.
func (l *Logger) Log(query string, args ...any) {
	if l == nil || !l.opts.ShowSQL {
		return
	}
	if l.opts.FormatSQL {
		query = Format(query)
	}
	event := l.out.WithLevel(l.opts.Level).Str("sql", query)
	if l.opts.ShowParams {
		event = event.Str("params", formatParams(args))
	}
	event.Msg("executed statement")
}

func formatParams(args []any) string {
	if len(args) == 0 {
		return "[]"
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		case nil:
			parts[i] = "NULL"
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
