package openobserve

import "encoding/json"

// Entry is one backend record. The backend schema is caller-defined, so no
// structure is assumed beyond the numeric _timestamp field every record
// carries in microseconds since the epoch.
type Entry map[string]any

// Timestamp returns the record's _timestamp in microseconds, or 0 when the
// field is missing or not numeric.
func (e Entry) Timestamp() int64 {
	switch v := e["_timestamp"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// SearchRequest describes one bounded search call. Start and End accept
// either absolute microsecond integers or the backend's relative time
// strings ("-1h", "now"); they are forwarded as-is so the backend resolves
// relative bounds itself.
type SearchRequest struct {
	SQL   string
	Start any
	End   any
	Size  int
}

// SearchResponse mirrors the backend's search payload.
type SearchResponse struct {
	Hits     []Entry `json:"hits"`
	Total    int     `json:"total"`
	Took     int     `json:"took"`
	ScanSize int     `json:"scan_size"`
}

// searchBody is the wire shape POSTed to the search endpoint.
type searchBody struct {
	Query searchQuery `json:"query"`
}

type searchQuery struct {
	SQL       string `json:"sql"`
	StartTime any    `json:"start_time"`
	EndTime   any    `json:"end_time"`
	From      int    `json:"from"`
	Size      int    `json:"size"`
}

// streamBody is the wire shape POSTed to the streaming search endpoint.
type streamBody struct {
	SQL       string `json:"sql"`
	StartTime any    `json:"start_time"`
	EndTime   any    `json:"end_time"`
}
