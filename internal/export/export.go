// Package export archives search results as zstd-compressed NDJSON.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/five82/oxtail/internal/openobserve"
)

// Write compresses entries onto w, one canonical JSON object per line.
func Write(w io.Writer, entries []openobserve.Entry) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}

	for _, entry := range entries {
		line, err := json.Marshal(entry)
		if err != nil {
			_ = enc.Close()
			return fmt.Errorf("encode entry: %w", err)
		}
		if _, err := enc.Write(append(line, '\n')); err != nil {
			_ = enc.Close()
			return fmt.Errorf("write archive: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush archive: %w", err)
	}
	return nil
}

// Read decompresses an archive produced by Write back into entries. It is
// the inverse used by tests and by anyone inspecting an export.
func Read(r io.Reader) ([]openobserve.Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	var out []openobserve.Entry
	scanner := bufio.NewScanner(dec)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry openobserve.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("decode archive line: %w", err)
		}
		out = append(out, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	return out, nil
}
