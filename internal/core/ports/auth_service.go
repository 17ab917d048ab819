package ports

import (
	"context"
	"time"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// AuthService is the session manager: it turns credentials into live
// sessions and presented tokens into resolved identities.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, expiresAt time.Time, user *domain.User, err error)
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
	DestroySession(ctx context.Context, token string) error
}
