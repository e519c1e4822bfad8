package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component attribute so every line
// can be traced back to the layer that produced it.
type Logger struct {
	*slog.Logger
	component string
}

type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

func New(cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	return &Logger{Logger: slog.New(handler), component: "app"}
}

// WithComponent returns a logger scoped to the given component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

// With returns a logger carrying additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), component: l.component}
}
