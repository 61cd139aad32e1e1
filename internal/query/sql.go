package query

import (
	"fmt"
	"strings"
)

// Order fixes the sort direction of emitted SQL.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// SelectSQL assembles the search statement other components parse:
//
//	SELECT * FROM <stream> [WHERE ...] ORDER BY _timestamp {ASC|DESC} [LIMIT <n>]
//
// The stream name must already be validated; where must come from
// WhereClause or be empty; limit <= 0 omits the LIMIT clause.
func SelectSQL(stream, where string, order Order, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", stream)
	if where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	fmt.Fprintf(&b, " ORDER BY _timestamp %s", order)
	if limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", limit)
	}
	return b.String()
}
