package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identPattern constrains anything interpolated into SQL as an identifier.
// Column and stream names cannot be parameterized in this dialect, so they
// are rejected outright when they carry anything but word characters.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

const (
	minLines = 1
	maxLines = 10000
)

// ValidateIdent checks a caller-supplied SQL identifier (column or stream
// name) against the safety pattern.
func ValidateIdent(field, name string) error {
	if !identPattern.MatchString(name) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("invalid identifier %q", name)}
	}
	return nil
}

// ValidateLines bounds a tail line count to 1..10000.
func ValidateLines(lines int) error {
	if lines < minLines || lines > maxLines {
		return &ValidationError{Field: "lines", Reason: fmt.Sprintf("must be between %d and %d, got %d", minLines, maxLines, lines)}
	}
	return nil
}

// WhereClause turns exact-match column filters into a WHERE fragment. This
// is the only place untrusted filter input reaches SQL text: keys must pass
// the identifier pattern, values have embedded single quotes doubled. Keys
// are emitted in sorted order so the same filters always produce the same
// SQL. An empty map yields an empty string.
func WhereClause(filters map[string]string) (string, error) {
	if len(filters) == 0 {
		return "", nil
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		if err := ValidateIdent("filter", k); err != nil {
			return "", err
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]string, 0, len(keys))
	for _, k := range keys {
		conds = append(conds, fmt.Sprintf("%s = '%s'", k, EscapeValue(filters[k])))
	}
	return "WHERE " + strings.Join(conds, " AND "), nil
}

// EscapeValue doubles embedded single quotes so a value can sit inside a
// single-quoted SQL literal.
func EscapeValue(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}
