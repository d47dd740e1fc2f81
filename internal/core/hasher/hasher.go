package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Prefix marks the digest algorithm in rendered digests.
const Prefix = "sha256:"

// Digest computes the SHA256 digest of a config file's raw content and
// returns it in the format "sha256:<hex_hash>".
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return Prefix + hex.EncodeToString(sum[:])
}

// Short returns the first n hex characters of a digest produced by Digest,
// without the algorithm prefix. Digests shorter than n are returned whole.
func Short(digest string, n int) string {
	hexPart := digest
	if len(digest) >= len(Prefix) && digest[:len(Prefix)] == Prefix {
		hexPart = digest[len(Prefix):]
	}
	if n <= 0 || len(hexPart) <= n {
		return hexPart
	}
	return hexPart[:n]
}
