package tail

import (
	"context"
	"time"

	"github.com/five82/oxtail/internal/openobserve"
	"github.com/five82/oxtail/internal/query"
)

const (
	defaultPageSize     = 1000
	defaultInterval     = 2 * time.Second
	defaultPruneHorizon = time.Minute
	defaultStartExpr    = "-1m"
)

// PollOptions configures one polling stream.
type PollOptions struct {
	// SQL is the ascending-order search statement to repeat each cycle.
	SQL string
	// Start is the initial window floor: an absolute microsecond integer,
	// a relative expression, or nil for the "-1m" default.
	Start any
	// Interval is the sleep between cycles.
	Interval time.Duration
	// PageSize bounds each search; defaults to 1000.
	PageSize int
	// PruneHorizon bounds how long fingerprints are remembered. The backend
	// gives no redelivery guarantee, so records re-delivered later than the
	// horizon can be emitted twice.
	PruneHorizon time.Duration
}

// Poller repeatedly searches an advancing time window and yields each
// record at most once per fingerprint within the prune horizon.
type Poller struct {
	client openobserve.Searcher
	opts   PollOptions
	now    func() time.Time
}

// NewPoller builds a poller. Zero option fields take defaults.
func NewPoller(client openobserve.Searcher, opts PollOptions) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.PruneHorizon <= 0 {
		opts.PruneHorizon = defaultPruneHorizon
	}
	return &Poller{client: client, opts: opts, now: time.Now}
}

// Run starts the poll loop and returns its stream. The loop owns its seen
// set exclusively and stops cleanly when ctx is cancelled; a search failure
// terminates the stream with a StreamError.
func (p *Poller) Run(ctx context.Context) *Stream {
	s := newStream()
	go p.loop(ctx, s)
	return s
}

func (p *Poller) loop(ctx context.Context, s *Stream) {
	floor, err := query.ResolveTimeAt(p.opts.Start, defaultStartExpr, p.now())
	if err != nil {
		s.finish(err)
		return
	}

	seen := newSeenSet()
	for {
		resp, err := p.client.Search(ctx, openobserve.SearchRequest{
			SQL:   p.opts.SQL,
			Start: floor,
			End:   "now",
			Size:  p.opts.PageSize,
		})
		if err != nil {
			if ctx.Err() != nil {
				s.finish(nil)
				return
			}
			s.finish(&StreamError{Op: "poll search", Err: err})
			return
		}

		for _, entry := range resp.Hits {
			ts := entry.Timestamp()
			fp := fingerprint(entry)
			if !seen.has(fp) {
				seen.add(fp, ts)
				if !s.emit(ctx, entry) {
					s.finish(nil)
					return
				}
			}
			// Search windows are inclusive on both ends; the +1 keeps the
			// same microsecond from being re-fetched forever.
			if ts > floor {
				floor = ts + 1
			}
		}

		seen.prune(p.now().Add(-p.opts.PruneHorizon).UnixMicro())

		select {
		case <-ctx.Done():
			s.finish(nil)
			return
		case <-time.After(p.opts.Interval):
		}
	}
}
