package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// NewID returns a compact URL-safe random identifier. 12 random bytes encode
// to 16 characters, which keeps ids short enough for URLs while staying
// unguessable.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
