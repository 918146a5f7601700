package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ArtifactKey builds the cache key for one rendered artifact: the hash of
// the placement file content, the output format, and a hash of the render
// options. Any change to the input or the parameters produces a new key, so
// stale artifacts are never served.
func ArtifactKey(contentHash, format string, opts any) string {
	encoded, _ := json.Marshal(opts)
	h := sha256.Sum256(encoded)
	return fmt.Sprintf("artifact:%s:%s:%s", contentHash, format, hex.EncodeToString(h[:]))
}
