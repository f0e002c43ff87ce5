// slog bridge onto the application's logrus sink
package logging

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// NewBridge returns a slog.Logger whose records are emitted through base,
// so the internal packages keep structured slog call sites while the
// process has a single logrus-configured output.
func NewBridge(base *logrus.Logger) *slog.Logger {
	return slog.New(&logrusHandler{base: base})
}

type logrusHandler struct {
	base  *logrus.Logger
	attrs []slog.Attr
	group string
}

func (h *logrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.base.IsLevelEnabled(toLogrusLevel(level))
}

func (h *logrusHandler) Handle(_ context.Context, rec slog.Record) error {
	fields := make(logrus.Fields, rec.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		fields[h.qualify(a.Key)] = a.Value.Any()
		return true
	})
	h.base.WithFields(fields).Log(toLogrusLevel(rec.Level), rec.Message)
	return nil
}

func (h *logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	merged := append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		a.Key = h.qualify(a.Key)
		merged = append(merged, a)
	}
	out.attrs = merged
	return &out
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	out := *h
	out.group = h.qualify(name)
	return &out
}

func (h *logrusHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func toLogrusLevel(l slog.Level) logrus.Level {
	switch {
	case l < slog.LevelInfo:
		return logrus.DebugLevel
	case l < slog.LevelWarn:
		return logrus.InfoLevel
	case l < slog.LevelError:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
