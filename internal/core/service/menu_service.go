package service

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

// MenuService serves the food menu from the active store backend.
type MenuService struct {
	repo ports.MenuRepository
}

func NewMenuService(repo ports.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]domain.FoodItem, error) {
	return s.repo.List(ctx)
}
