package verification

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the duplicate-detection key for recognized text: the
// lowercase hex SHA-256 of the lowercased text. It is a pure function with
// no salt or timestamp on purpose; duplicate detection relies on
// fingerprint equality across independent submissions.
//
// OCR output is not guaranteed stable across runs, so two scans of the
// physically same receipt may yield different fingerprints. That false
// negative is an accepted tradeoff inherited from the design, not a bug.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(text)))
	return hex.EncodeToString(sum[:])
}
