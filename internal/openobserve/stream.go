package openobserve

import (
	"context"
	"io"
)

const chunkBufferSize = 32 * 1024

// StreamHandle exposes a chunked HTTP response body one transport frame at
// a time. It deliberately does not reassemble lines: decoding and partial
// line handling belong to the consumer.
type StreamHandle struct {
	body io.ReadCloser
	buf  [chunkBufferSize]byte
}

// Next blocks until the transport delivers the next chunk and returns a
// copy of it. It returns io.EOF when the backend closes the stream cleanly.
func (s *StreamHandle) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n, err := s.body.Read(s.buf[:])
	if n > 0 {
		chunk := make([]byte, n)
		copy(chunk, s.buf[:n])
		return chunk, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// Close releases the underlying response body. Closing mid-stream also
// unblocks a pending Next call.
func (s *StreamHandle) Close() error {
	return s.body.Close()
}
