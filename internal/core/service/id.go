package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID returns a prefixed identifier in the format <prefix>_XXXXXXXXXXXX
// (6 random bytes, hex). Collisions are vanishingly unlikely and store
// writes are keyed inserts, so no retry loop is needed.
func newID(prefix string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: current nanoseconds
		return fmt.Sprintf("%s_%012X", prefix, time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("%s_%012X", prefix, b)
}
