package openobserve

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	t.Parallel()

	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("observe.example.com:5080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "observe.example.com:5080" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("https://observe.example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not stripped: %q", u.String())
	}
}

func TestClient_SearchEncodesRequestAndDecodesHits(t *testing.T) {
	t.Parallel()

	var gotPath, gotAuth, gotRequestID string
	var gotBody searchBody

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"hits":[{"_timestamp":1700000000000000,"msg":"hello"}],"total":1,"took":3,"scan_size":1024}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "myorg", "secret")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.Search(ctx, SearchRequest{
		SQL:   "SELECT * FROM logs ORDER BY _timestamp ASC",
		Start: int64(1699999999000000),
		End:   "now",
		Size:  1000,
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if gotPath != "/api/myorg/_search" {
		t.Fatalf("path = %q, want /api/myorg/_search", gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("auth header = %q, want bearer token", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("request id header missing")
	}
	if gotBody.Query.SQL != "SELECT * FROM logs ORDER BY _timestamp ASC" {
		t.Fatalf("sql = %q", gotBody.Query.SQL)
	}
	if start, ok := gotBody.Query.StartTime.(float64); !ok || int64(start) != 1699999999000000 {
		t.Fatalf("start_time = %v, want absolute microseconds", gotBody.Query.StartTime)
	}
	if gotBody.Query.EndTime != "now" {
		t.Fatalf("end_time = %v, want \"now\"", gotBody.Query.EndTime)
	}
	if gotBody.Query.Size != 1000 {
		t.Fatalf("size = %d, want 1000", gotBody.Query.Size)
	}

	if len(resp.Hits) != 1 || resp.Total != 1 {
		t.Fatalf("response = %#v, want one hit", resp)
	}
	if ts := resp.Hits[0].Timestamp(); ts != 1700000000000000 {
		t.Fatalf("hit timestamp = %d", ts)
	}
}

func TestClient_SearchSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad sql", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Search(context.Background(), SearchRequest{SQL: "SELECT"}); err == nil {
		t.Fatalf("Search did not surface HTTP 400")
	}
}

func TestClient_OpenStreamSetsParamsAndYieldsChunks(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotBody streamBody

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		flusher := w.(http.Flusher)
		_, _ = io.WriteString(w, "{\"msg\":\"one\"}\n")
		flusher.Flush()
		_, _ = io.WriteString(w, "{\"msg\":\"two\"}\n")
		flusher.Flush()
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "default", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	handle, err := c.OpenStream(ctx, SearchRequest{SQL: "SELECT * FROM logs", Start: "-1m", End: "now"})
	if err != nil {
		t.Fatalf("OpenStream returned error: %v", err)
	}
	t.Cleanup(func() { _ = handle.Close() })

	if gotQuery.Get("is_ui_histogram") != "false" || gotQuery.Get("is_multi_stream_search") != "false" {
		t.Fatalf("stream params = %v, want fixed flags", gotQuery)
	}
	if gotBody.SQL != "SELECT * FROM logs" || gotBody.StartTime != "-1m" || gotBody.EndTime != "now" {
		t.Fatalf("stream body = %#v", gotBody)
	}

	var total []byte
	for {
		chunk, err := handle.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		total = append(total, chunk...)
	}
	if want := "{\"msg\":\"one\"}\n{\"msg\":\"two\"}\n"; string(total) != want {
		t.Fatalf("stream payload = %q, want %q", total, want)
	}
}

func TestEntry_Timestamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		entry Entry
		want  int64
	}{
		{Entry{"_timestamp": float64(1700000000000000)}, 1700000000000000},
		{Entry{"_timestamp": int64(5)}, 5},
		{Entry{"_timestamp": 7}, 7},
		{Entry{"_timestamp": json.Number("9")}, 9},
		{Entry{"_timestamp": "not a number"}, 0},
		{Entry{}, 0},
	}
	for _, tc := range cases {
		if got := tc.entry.Timestamp(); got != tc.want {
			t.Fatalf("Timestamp(%v) = %d, want %d", tc.entry, got, tc.want)
		}
	}
}
