package tail

import (
	"context"
	"time"

	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/query"
)

const (
	defaultLines     = 100
	historyStartExpr = "-1h"
	followStartExpr  = "-1s"
)

// Config carries coordinator-wide tuning shared by every tail it starts.
type Config struct {
	Interval     time.Duration // follow-phase poll cadence
	PageSize     int           // follow-phase search bound
	PruneHorizon time.Duration // follow-phase fingerprint retention
}

// Options describes one tail invocation.
type Options struct {
	Stream  string
	Filters map[string]string
	Follow  bool
	Lines   int // initial history depth; defaults to 100
}

// Coordinator stitches an initial "last N lines" batch onto a follow-phase
// poll loop, tail -f style.
type Coordinator struct {
	client openobserve.Searcher
	cfg    Config
	now    func() time.Time
}

// NewCoordinator builds a coordinator over the given search client.
func NewCoordinator(client openobserve.Searcher, cfg Config) *Coordinator {
	return &Coordinator{client: client, cfg: cfg, now: time.Now}
}

// Tail validates its inputs, then streams the last Lines entries of the
// stream in chronological order and, when Follow is set, every new entry
// after them. Validation failures are returned immediately, before any
// network call.
func (c *Coordinator) Tail(ctx context.Context, opts Options) (*Stream, error) {
	if err := query.ValidateIdent("stream", opts.Stream); err != nil {
		return nil, err
	}
	lines := opts.Lines
	if lines == 0 {
		lines = defaultLines
	}
	if err := query.ValidateLines(lines); err != nil {
		return nil, err
	}
	where, err := query.WhereClause(opts.Filters)
	if err != nil {
		return nil, err
	}

	s := newStream()
	go c.run(ctx, s, opts, where, lines)
	return s, nil
}

func (c *Coordinator) run(ctx context.Context, s *Stream, opts Options, where string, lines int) {
	historySQL := query.SelectSQL(opts.Stream, where, query.OrderDesc, lines)
	resp, err := c.client.Search(ctx, openobserve.SearchRequest{
		SQL:   historySQL,
		Start: historyStartExpr,
		End:   "now",
		Size:  lines,
	})
	if err != nil {
		if ctx.Err() != nil {
			s.finish(nil)
			return
		}
		s.finish(&StreamError{Op: "fetch history", Err: err})
		return
	}

	// The backend returns newest-first; replay in chronological order.
	var maxTS int64
	for i := len(resp.Hits) - 1; i >= 0; i-- {
		entry := resp.Hits[i]
		if ts := entry.Timestamp(); ts > maxTS {
			maxTS = ts
		}
		if !s.emit(ctx, entry) {
			s.finish(nil)
			return
		}
	}

	if !opts.Follow {
		s.finish(nil)
		return
	}

	var start any = followStartExpr
	if maxTS > 0 {
		start = maxTS
	}
	poller := NewPoller(c.client, PollOptions{
		SQL:          query.SelectSQL(opts.Stream, where, query.OrderAsc, 0),
		Start:        start,
		Interval:     c.cfg.Interval,
		PageSize:     c.cfg.PageSize,
		PruneHorizon: c.cfg.PruneHorizon,
	})
	poller.now = c.now

	inner := poller.Run(ctx)
	for entry := range inner.Entries() {
		if !s.emit(ctx, entry) {
			s.finish(nil)
			return
		}
	}
	s.finish(inner.Err())
}
