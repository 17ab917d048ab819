package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// OrderRepository stores each order as JSON and keeps a per-user id list.
// LPUSH prepends, so the list is newest-first without a sort.
type OrderRepository struct {
	client *redis.Client
}

func NewOrderRepository(client *redis.Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func orderKey(id string) string          { return "order:" + id }
func userOrdersKey(userID string) string { return "orders:" + userID }

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, orderKey(order.ID), payload, 0)
	pipe.LPush(ctx, userOrdersKey(order.UserID), order.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders newest-first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	ids, err := r.client.LRange(ctx, userOrdersKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list order ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, orderKey(id))
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry whose order key is gone; skip rather than fail the listing.
			continue
		}
		var order domain.Order
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}
		order.UserID = userID
		orders = append(orders, order)
	}
	return orders, nil
}
