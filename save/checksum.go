package save

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Checksum returns the hex SHA-256 of blob.
func Checksum(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether sum is the checksum of blob.
func Verify(blob, sum []byte) bool {
	want := []byte(Checksum(blob))
	got := bytes.ToLower(bytes.TrimSpace(sum))
	return subtle.ConstantTimeCompare(want, got) == 1
}
