package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// UserRepository persists user credentials and profile data.
//
// Create must enforce email uniqueness atomically at the store level (unique
// index or conditional write) and return domain.ErrUserExists on a duplicate;
// an application-side existence check is not sufficient.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
