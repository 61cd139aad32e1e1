// Package hashutil provides content hashing over canonical JSON.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SumJSON returns the hex SHA-256 of the canonical JSON serialization of v.
// encoding/json writes map keys in sorted order at every nesting level, so
// two values that are logically equal hash identically regardless of the key
// order they were decoded from. Values that cannot be marshalled fall back
// to hashing their Go string rendering.
func SumJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		raw = []byte(fmt.Sprintf("%#v", v))
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
