package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/oxtail/internal/openobserve"
)

const entryTimestampLayout = "2006-01-02 15:04:05.000"

// messageFields are checked in order for the entry's primary message text.
var messageFields = []string{"msg", "message", "log", "body"}

// FormatPlain renders an entry as a single uncolored line:
// timestamp, level, message, then the remaining fields as k=v pairs in
// sorted order (record key order is not preserved by decoding).
func FormatPlain(e openobserve.Entry) string {
	ts, level, msg, rest := splitEntry(e)
	parts := make([]string, 0, 4)
	if ts != "" {
		parts = append(parts, ts)
	}
	if level != "" {
		parts = append(parts, level)
	}
	if msg != "" {
		parts = append(parts, msg)
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	if len(parts) == 0 {
		return "(empty record)"
	}
	return strings.Join(parts, " ")
}

// Columns splits an entry into the four display columns the CLI table
// shares with the TUI line format.
func Columns(e openobserve.Entry) (ts, level, msg, fields string) {
	return splitEntry(e)
}

// formatEntry renders an entry with theme colors for the viewport.
func formatEntry(e openobserve.Entry, styles Styles) string {
	ts, level, msg, rest := splitEntry(e)
	var b strings.Builder
	if ts != "" {
		b.WriteString(styles.Timestamp.Render(ts))
		b.WriteString(" ")
	}
	if level != "" {
		b.WriteString(levelStyle(level, styles).Render(level))
		b.WriteString(" ")
	}
	b.WriteString(msg)
	if rest != "" {
		if msg != "" {
			b.WriteString(" ")
		}
		b.WriteString(styles.Field.Render(rest))
	}
	return b.String()
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERROR", "FATAL", "CRITICAL":
		return styles.Error
	case "WARN", "WARNING":
		return styles.Warn
	case "DEBUG", "TRACE":
		return styles.Debug
	default:
		return styles.Info
	}
}

func splitEntry(e openobserve.Entry) (ts, level, msg, rest string) {
	consumed := map[string]bool{"_timestamp": true}

	if micros := e.Timestamp(); micros > 0 {
		ts = time.UnixMicro(micros).Local().Format(entryTimestampLayout)
	}

	if raw, ok := e["level"].(string); ok {
		level = strings.ToUpper(strings.TrimSpace(raw))
		consumed["level"] = true
	}

	for _, field := range messageFields {
		if raw, ok := e[field].(string); ok {
			msg = strings.TrimSpace(raw)
			consumed[field] = true
			break
		}
	}

	keys := make([]string, 0, len(e))
	for k := range e {
		if !consumed[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, e[k]))
	}
	rest = strings.Join(pairs, " ")
	return ts, level, msg, rest
}
