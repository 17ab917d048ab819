package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrUnauthenticated = errors.New("not authenticated")

// Session maps an opaque bearer token to its owning user for a bounded
// validity window. A session is valid iff now < ExpiresAt; validity is
// re-evaluated on every lookup. One user may hold any number of concurrent
// sessions.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is past its validity window at ref.
func (s *Session) Expired(ref time.Time) bool {
	return !ref.Before(s.ExpiresAt)
}
