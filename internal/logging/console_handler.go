package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders compact single-line records for interactive use:
//
//	15:04:05 INF recommendations ready count=3 mood_filter=true
type consoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar) slog.Handler {
	return &consoleHandler{writer: w, level: lvl}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var buf bytes.Buffer
	buf.Grow(128)
	buf.WriteString(timestamp.Format("15:04:05"))
	buf.WriteByte(' ')
	buf.WriteString(levelTag(record.Level))
	buf.WriteByte(' ')

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}
	buf.WriteString(message)

	// Attached attrs were key-qualified in WithAttrs; only record attrs
	// take the current group prefix.
	for _, attr := range h.attrs {
		writeAttr(&buf, nil, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&buf, h.groups, attr)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	qualified := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		if prefix != "" && attr.Key != "" {
			attr.Key = prefix + "." + attr.Key
		}
		qualified[i] = attr
	}
	return &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  append(append([]slog.Attr{}, h.attrs...), qualified...),
		groups: h.groups,
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := &consoleHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
	return clone
}

func writeAttr(buf *bytes.Buffer, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		nested := groups
		if attr.Key != "" {
			nested = append(append([]string{}, groups...), attr.Key)
		}
		for _, child := range attr.Value.Group() {
			writeAttr(buf, nested, child)
		}
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t") {
		fmt.Fprintf(buf, "%q", value)
	} else {
		buf.WriteString(value)
	}
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERR"
	case level >= slog.LevelWarn:
		return "WRN"
	case level >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}
