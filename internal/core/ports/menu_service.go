package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

type MenuService interface {
	List(ctx context.Context) ([]domain.FoodItem, error)
}
