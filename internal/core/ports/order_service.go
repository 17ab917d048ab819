package ports

import (
	"context"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// PlaceOrderInput carries a checkout submission for an authenticated user.
type PlaceOrderInput struct {
	UserID          string
	Items           []domain.OrderItem
	TotalAmount     float64
	DeliveryAddress string
	PaymentMethod   string
}

type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}
