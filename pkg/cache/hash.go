package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// artifactPrefix namespaces rendered artifacts within a shared backend.
const artifactPrefix = "tptdiagram:artifact:"

// ArtifactKey returns the cache key for dot rendered as format.
func ArtifactKey(dot, format string) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(dot))
	return artifactPrefix + hex.EncodeToString(h.Sum(nil))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
