package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentFingerprint returns a short hex digest of data, used to correlate
// log lines for the same upload without logging its contents.
func ContentFingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
