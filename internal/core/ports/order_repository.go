package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// OrderRepository persists orders and serves per-user order history.
// ListByUser returns orders newest-first in both backends.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
