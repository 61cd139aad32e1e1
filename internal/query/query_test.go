package query

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestResolveTimeAt_RelativeExpressions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	nowMicros := now.UnixMicro()

	cases := []struct {
		expr string
		want int64
	}{
		{"now", nowMicros},
		{"-1s", nowMicros - 1_000_000},
		{"-5m", nowMicros - 5*60*1_000_000},
		{"-1h", nowMicros - 3600*1_000_000},
		{"-2d", nowMicros - 2*24*3600*1_000_000},
		{"-0s", nowMicros},
	}
	for _, tc := range cases {
		got, err := ResolveTimeAt(tc.expr, "-1m", now)
		if err != nil {
			t.Fatalf("ResolveTimeAt(%q) returned error: %v", tc.expr, err)
		}
		if got != tc.want {
			t.Fatalf("ResolveTimeAt(%q) = %d, want %d", tc.expr, got, tc.want)
		}
	}
}

func TestResolveTimeAt_AbsolutePassthrough(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, expr := range []any{int64(1700000000000000), int(42), float64(99), json.Number("123456")} {
		got, err := ResolveTimeAt(expr, "-1m", now)
		if err != nil {
			t.Fatalf("ResolveTimeAt(%v) returned error: %v", expr, err)
		}
		// Resolving the resolved value again must be a fixed point.
		again, err := ResolveTimeAt(got, "-1m", now.Add(time.Hour))
		if err != nil {
			t.Fatalf("ResolveTimeAt(%d) returned error: %v", got, err)
		}
		if again != got {
			t.Fatalf("absolute timestamp changed on re-resolve: %d -> %d", got, again)
		}
	}
}

func TestResolveTimeAt_NilUsesFallback(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	got, err := ResolveTimeAt(nil, "-1m", now)
	if err != nil {
		t.Fatalf("ResolveTimeAt(nil) returned error: %v", err)
	}
	if want := now.UnixMicro() - 60*1_000_000; got != want {
		t.Fatalf("ResolveTimeAt(nil) = %d, want %d", got, want)
	}
}

func TestResolveTimeAt_RejectsUnknownGrammar(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"", "1h", "-h", "-5y", "-5 m", "yesterday", "--5m", "-5M"} {
		_, err := ResolveTimeAt(expr, "-1m", time.Now())
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("ResolveTimeAt(%q) error = %v, want ValidationError", expr, err)
		}
	}
}

func TestWhereClause_EscapesQuotes(t *testing.T) {
	t.Parallel()

	got, err := WhereClause(map[string]string{"level": "O'Brien"})
	if err != nil {
		t.Fatalf("WhereClause returned error: %v", err)
	}
	if want := "WHERE level = 'O''Brien'"; got != want {
		t.Fatalf("WhereClause = %q, want %q", got, want)
	}
}

func TestWhereClause_SortedDeterministicOutput(t *testing.T) {
	t.Parallel()

	filters := map[string]string{"zeta": "1", "alpha": "2", "mid": "3"}
	want := "WHERE alpha = '2' AND mid = '3' AND zeta = '1'"
	for i := 0; i < 20; i++ {
		got, err := WhereClause(filters)
		if err != nil {
			t.Fatalf("WhereClause returned error: %v", err)
		}
		if got != want {
			t.Fatalf("WhereClause = %q, want %q", got, want)
		}
	}
}

func TestWhereClause_EmptyFilters(t *testing.T) {
	t.Parallel()

	got, err := WhereClause(nil)
	if err != nil {
		t.Fatalf("WhereClause(nil) returned error: %v", err)
	}
	if got != "" {
		t.Fatalf("WhereClause(nil) = %q, want empty", got)
	}
}

func TestWhereClause_RejectsUnsafeKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"a b", "a-b", "a;b", "a'b", "", "a.b", "drop table x"} {
		_, err := WhereClause(map[string]string{key: "v"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("WhereClause(%q) error = %v, want ValidationError", key, err)
		}
		if key != "" && !strings.Contains(verr.Error(), key) {
			t.Fatalf("error %q does not name offending key %q", verr.Error(), key)
		}
	}
}

func TestEscapeValue_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "plain", "O'Brien", "''", "a'b'c", "end'"} {
		escaped := EscapeValue(v)
		back := strings.ReplaceAll(escaped, "''", "'")
		if back != v {
			t.Fatalf("escape round-trip of %q = %q", v, back)
		}
	}
}

func TestValidateLines_Bounds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 50, 10000} {
		if err := ValidateLines(n); err != nil {
			t.Fatalf("ValidateLines(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{0, -1, 10001} {
		var verr *ValidationError
		if err := ValidateLines(n); !errors.As(err, &verr) {
			t.Fatalf("ValidateLines(%d) = %v, want ValidationError", n, err)
		}
	}
}

func TestSelectSQL(t *testing.T) {
	t.Parallel()

	got := SelectSQL("app_logs", "WHERE level = 'error'", OrderDesc, 100)
	want := "SELECT * FROM app_logs WHERE level = 'error' ORDER BY _timestamp DESC LIMIT 100"
	if got != want {
		t.Fatalf("SelectSQL = %q, want %q", got, want)
	}

	got = SelectSQL("app_logs", "", OrderAsc, 0)
	want = "SELECT * FROM app_logs ORDER BY _timestamp ASC"
	if got != want {
		t.Fatalf("SelectSQL = %q, want %q", got, want)
	}
}
