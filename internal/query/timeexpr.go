package query

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// relativePattern matches the backend's relative time grammar: "-<N><unit>"
// with unit in s, m, h, d. The literal "now" is handled separately.
var relativePattern = regexp.MustCompile(`^-(\d+)([smhd])$`)

var unitMicros = map[string]int64{
	"s": int64(time.Second / time.Microsecond),
	"m": int64(time.Minute / time.Microsecond),
	"h": int64(time.Hour / time.Microsecond),
	"d": 24 * int64(time.Hour/time.Microsecond),
}

// ResolveTime converts a time expression into absolute microseconds since
// the epoch. A nil expression resolves fallback instead. Strings are parsed
// as relative expressions ("-5m", "now"); integer kinds pass through
// unchanged, already being absolute microseconds.
func ResolveTime(expr any, fallback string) (int64, error) {
	return ResolveTimeAt(expr, fallback, time.Now())
}

// ResolveTimeAt is ResolveTime pinned to an explicit resolution instant.
func ResolveTimeAt(expr any, fallback string, now time.Time) (int64, error) {
	if expr == nil {
		expr = fallback
	}
	switch v := expr.(type) {
	case string:
		return resolveRelative(v, now)
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &ValidationError{Field: "time", Reason: fmt.Sprintf("not a microsecond timestamp: %q", v.String())}
		}
		return n, nil
	default:
		return 0, &ValidationError{Field: "time", Reason: fmt.Sprintf("unsupported time expression type %T", expr)}
	}
}

func resolveRelative(expr string, now time.Time) (int64, error) {
	nowMicros := now.UnixMicro()
	if expr == "now" {
		return nowMicros, nil
	}
	m := relativePattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, &ValidationError{Field: "time", Reason: fmt.Sprintf("unrecognized relative time expression %q", expr)}
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "time", Reason: fmt.Sprintf("unrecognized relative time expression %q", expr)}
	}
	return nowMicros - n*unitMicros[m[2]], nil
}
