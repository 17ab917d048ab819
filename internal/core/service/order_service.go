package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/warungkita/food-ordering/internal/api/metrics"
	"github.com/warungkita/food-ordering/internal/core/domain"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

// OrderService implements checkout and order history.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// PlaceOrder recomputes the order total server-side and rejects the
// submission when the client-declared total diverges by more than
// domain.TotalEpsilon. There is no idempotency key: resubmission creates a
// new order.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		ID:              newID("order"),
		UserID:          input.UserID,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          domain.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if math.Abs(order.Subtotal()-input.TotalAmount) > domain.TotalEpsilon {
		metrics.OrderTotalMismatchesTotal.Inc()
		s.logger.Warn().
			Str("user_id", input.UserID).
			Float64("declared", input.TotalAmount).
			Float64("computed", order.Subtotal()).
			Msg("order total mismatch")
		return nil, domain.ErrInvalidTotal
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersPlacedTotal.WithLabelValues(input.PaymentMethod).Inc()
	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", input.UserID).
		Float64("total", order.TotalAmount).
		Msg("order placed")

	return order, nil
}

// ListOrders returns the user's order history, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
