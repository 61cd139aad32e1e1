package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/oxtail/internal/openobserve"
)

func TestFormatPlain_OrdersSections(t *testing.T) {
	t.Parallel()

	micros := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC).UnixMicro()
	entry := openobserve.Entry{
		"_timestamp": float64(micros),
		"level":      "warn",
		"msg":        "disk almost full",
		"host":       "node-1",
		"app":        "ingest",
	}

	line := FormatPlain(entry)
	if !strings.Contains(line, "WARN") {
		t.Fatalf("line %q missing upper-cased level", line)
	}
	if !strings.Contains(line, "disk almost full") {
		t.Fatalf("line %q missing message", line)
	}
	// Remaining fields are sorted, so app comes before host.
	if strings.Index(line, "app=ingest") > strings.Index(line, "host=node-1") {
		t.Fatalf("line %q fields not sorted", line)
	}
}

func TestFormatPlain_EmptyRecord(t *testing.T) {
	t.Parallel()

	if got := FormatPlain(openobserve.Entry{}); got != "(empty record)" {
		t.Fatalf("FormatPlain(empty) = %q", got)
	}
}

func TestFormatPlain_MessageFieldFallbacks(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"msg", "message", "log", "body"} {
		entry := openobserve.Entry{field: "hello"}
		if got := FormatPlain(entry); !strings.Contains(got, "hello") {
			t.Fatalf("FormatPlain with %q field = %q, want message text", field, got)
		}
	}
}

func TestSplitEntry_MissingTimestampOmitted(t *testing.T) {
	t.Parallel()

	ts, _, msg, _ := splitEntry(openobserve.Entry{"msg": "x"})
	if ts != "" {
		t.Fatalf("timestamp = %q, want empty for missing _timestamp", ts)
	}
	if msg != "x" {
		t.Fatalf("msg = %q, want x", msg)
	}
}
