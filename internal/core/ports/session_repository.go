package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// SessionRepository persists session-token → user mappings.
//
// Find returns domain.ErrSessionNotFound for absent tokens; it may also
// return it for entries the backend has already reclaimed past their expiry.
// Delete of an absent token is a no-op, not an error.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
