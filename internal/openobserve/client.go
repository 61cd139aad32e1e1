package openobserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Searcher is the search collaborator contract the tailing engine depends
// on. It is implemented by *Client and by test fakes.
type Searcher interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// Streamer opens a long-lived chunked search stream.
type Streamer interface {
	OpenStream(ctx context.Context, req SearchRequest) (*StreamHandle, error)
}

// Ensure Client satisfies both collaborator contracts at compile time.
var (
	_ Searcher = (*Client)(nil)
	_ Streamer = (*Client)(nil)
)

// Client talks to an OpenObserve-style HTTP search API.
type Client struct {
	baseURL   *url.URL
	org       string
	token     string
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:5080"
	defaultOrg       = "default"
	defaultUserAgent = "oxtail/0.1"
	searchTimeout    = 30 * time.Second
)

// NewClient builds a Client for the given base URL and organization. An
// empty token disables the Authorization header.
func NewClient(baseURL, org, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(org) == "" {
		org = defaultOrg
	}
	return &Client{
		baseURL: base,
		org:     org,
		token:   strings.TrimSpace(token),
		// No global timeout: streaming responses stay open until the
		// caller cancels. Search calls carry their own deadline.
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// Search issues one bounded search call and decodes the hit list.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	body := searchBody{Query: searchQuery{
		SQL:       req.SQL,
		StartTime: req.Start,
		EndTime:   req.End,
		From:      0,
		Size:      req.Size,
	}}
	rel := &url.URL{Path: fmt.Sprintf("/api/%s/_search", c.org)}

	resp, err := c.post(ctx, rel, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &payload, nil
}

// OpenStream starts a chunked streaming search. The returned handle yields
// raw byte chunks as the transport delivers them; the caller owns decoding
// and must Close the handle.
func (c *Client) OpenStream(ctx context.Context, req SearchRequest) (*StreamHandle, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("is_ui_histogram", "false")
	values.Set("is_multi_stream_search", "false")
	rel := &url.URL{
		Path:     fmt.Sprintf("/api/%s/_search_stream", c.org),
		RawQuery: values.Encode(),
	}
	body := streamBody{SQL: req.SQL, StartTime: req.Start, EndTime: req.End}

	resp, err := c.post(ctx, rel, body)
	if err != nil {
		return nil, err
	}
	return &StreamHandle{body: resp.Body}, nil
}

func (c *Client) post(ctx context.Context, rel *url.URL, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("api %s returned status %d: %s", rel.Path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return resp, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
