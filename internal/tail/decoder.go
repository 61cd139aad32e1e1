package tail

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/five82/oxtail/internal/openobserve"
)

// ChunkSource yields raw byte frames from a chunked HTTP response. Next
// blocks until the transport delivers a chunk, returns io.EOF on a clean
// close, and any other error on transport failure.
type ChunkSource interface {
	Next(ctx context.Context) ([]byte, error)
}

// DecodeChunks consumes a chunk source and streams the log entries found in
// its newline-delimited JSON payload. Each chunk is split on newlines
// independently; a line cut in half by a frame boundary fails to decode and
// is dropped silently, which is an expected artifact rather than a fault.
// Transport failures terminate the stream with a StreamError.
func DecodeChunks(ctx context.Context, src ChunkSource) *Stream {
	s := newStream()
	go decodeLoop(ctx, src, s)
	return s
}

// DecodeAll consumes the source eagerly until it ends and returns every
// decoded entry.
func DecodeAll(ctx context.Context, src ChunkSource) ([]openobserve.Entry, error) {
	return DecodeChunks(ctx, src).Collect()
}

func decodeLoop(ctx context.Context, src ChunkSource, s *Stream) {
	for {
		chunk, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				s.finish(nil)
				return
			}
			s.finish(&StreamError{Op: "read stream chunk", Err: err})
			return
		}
		for _, entry := range decodeChunk(chunk) {
			if !s.emit(ctx, entry) {
				s.finish(nil)
				return
			}
		}
	}
}

// decodeChunk splits one frame into candidate lines and keeps everything
// that decodes to a JSON object, fanning out {"hits": [...]} batches.
func decodeChunk(chunk []byte) []openobserve.Entry {
	var out []openobserve.Entry
	for _, line := range strings.Split(strings.TrimSpace(string(chunk)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var decoded any
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			continue
		}
		record, ok := decoded.(map[string]any)
		if !ok {
			continue
		}
		if hits, ok := record["hits"].([]any); ok {
			for _, hit := range hits {
				if m, ok := hit.(map[string]any); ok {
					out = append(out, openobserve.Entry(m))
				}
			}
			continue
		}
		out = append(out, openobserve.Entry(record))
	}
	return out
}
