package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

// newLogger creates a logger writing to w with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or a
// default logger when none was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
