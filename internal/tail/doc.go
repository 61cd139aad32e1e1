// Package tail implements the tailing and streaming engine: a deduplicating
// poll loop, a chunked-stream line decoder, and the coordinator that
// stitches an initial history batch onto a follow phase.
//
// # Streams
//
// Every producer in this package hands back a *Stream: a channel of entries
// plus a terminal error checked after the channel closes. Cancelling the
// context always ends a stream cleanly with a nil error; a search or
// transport failure ends it with a *StreamError wrapping the cause. The
// engine never retries; retry policy belongs to the caller.
//
// # Deduplication
//
// The poller repeats a bounded ascending search over an advancing window
// whose ceiling is always the literal "now". Each record is identified by a
// fingerprint of its timestamp and canonical JSON content; a fingerprint is
// yielded at most once while it remains inside the prune horizon. The
// window floor only ever moves forward: past the newest timestamp seen,
// plus one microsecond, because backend windows are inclusive on both ends.
//
// The horizon (default one minute) is a heuristic, not a guarantee: the
// backend documents no maximum redelivery delay, so it is configurable, and
// a backend that re-delivers older records can produce duplicates after
// pruning.
//
// # Ownership
//
// One goroutine drives each stream. The seen set and window floor are owned
// by that goroutine and never shared; tailing several streams concurrently
// means one poller per stream, all safely sharing one stateless client.
package tail
