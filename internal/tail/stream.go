package tail

import (
	"context"

	"github.com/five82/oxtail/internal/openobserve"
)

// Stream is a lazy sequence of log entries fed by a single background
// goroutine. Consumers range over Entries until it closes, then check Err:
// nil means clean termination (end of data or cancellation), non-nil means
// the stream failed and was aborted.
type Stream struct {
	entries chan openobserve.Entry
	err     error
}

func newStream() *Stream {
	return &Stream{entries: make(chan openobserve.Entry)}
}

// Entries returns the channel entries arrive on. It is closed exactly once
// when the stream terminates.
func (s *Stream) Entries() <-chan openobserve.Entry {
	return s.entries
}

// Err reports why the stream terminated. Only valid after Entries closes.
func (s *Stream) Err() error {
	return s.err
}

// emit delivers one entry, giving up when the context is cancelled. It
// reports whether the send happened.
func (s *Stream) emit(ctx context.Context, e openobserve.Entry) bool {
	select {
	case s.entries <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

// finish records the terminal error (nil for a clean stop) and closes the
// entry channel. The channel close publishes err to consumers.
func (s *Stream) finish(err error) {
	s.err = err
	close(s.entries)
}

// Collect drains the stream into a slice, returning the terminal error.
func (s *Stream) Collect() ([]openobserve.Entry, error) {
	var out []openobserve.Entry
	for e := range s.Entries() {
		out = append(out, e)
	}
	return out, s.Err()
}
