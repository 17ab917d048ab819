package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// MenuRepository serves the food menu.
// Seed inserts items only when the menu namespace is empty.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.FoodItem, error)
	Seed(ctx context.Context, items []domain.FoodItem) error
}
