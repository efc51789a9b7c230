// Package daily derives the shared code of the day. Everyone playing on the
// same UTC date with the same salt gets the same secret.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultSalt is used when no salt is configured.
const DefaultSalt = "mastermind-daily"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic generator seed for a date using HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) uint64 {
	if salt == "" {
		salt = DefaultSalt
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a PCG seed
	return binary.BigEndian.Uint64(sum[:8])
}
