package tail

import (
	"fmt"

	"github.com/five82/oxtail/internal/hashutil"
	"github.com/five82/oxtail/internal/openobserve"
)

// fingerprint derives the identity key used for client-side deduplication:
// the record's microsecond timestamp joined with a hash of its canonical
// JSON form. Canonical serialization keeps the key stable when the backend
// returns the same logical record with a different key order.
func fingerprint(e openobserve.Entry) string {
	return fmt.Sprintf("%d:%s", e.Timestamp(), hashutil.SumJSON(e))
}

// seenSet tracks fingerprints already yielded by one poller. It is owned by
// exactly one poll loop and never shared.
type seenSet struct {
	fps map[string]int64 // fingerprint -> embedded timestamp, for pruning
}

func newSeenSet() *seenSet {
	return &seenSet{fps: make(map[string]int64)}
}

func (s *seenSet) has(fp string) bool {
	_, ok := s.fps[fp]
	return ok
}

func (s *seenSet) add(fp string, ts int64) {
	s.fps[fp] = ts
}

// prune discards fingerprints older than the cutoff. This bounds memory
// under sustained tailing at the cost of not deduplicating records the
// backend re-delivers later than the horizon.
func (s *seenSet) prune(cutoffMicros int64) {
	for fp, ts := range s.fps {
		if ts < cutoffMicros {
			delete(s.fps, fp)
		}
	}
}

func (s *seenSet) len() int {
	return len(s.fps)
}
