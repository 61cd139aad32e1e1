package tail

import "fmt"

// StreamError wraps a search or transport failure that terminated a stream.
// The engine never retries; callers that want resilience wrap the stream in
// their own retry loop.
type StreamError struct {
	Op  string
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
