package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

// MenuRepository stores each menu item as JSON plus an id list preserving
// display order.
type MenuRepository struct {
	client *redis.Client
}

func NewMenuRepository(client *redis.Client) *MenuRepository {
	return &MenuRepository{client: client}
}

const menuIDsKey = "menu:ids"

func menuItemKey(id string) string { return "menu:item:" + id }

func (r *MenuRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	ids, err := r.client.LRange(ctx, menuIDsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list menu ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, menuItemKey(id))
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	items := make([]domain.FoodItem, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var item domain.FoodItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("unmarshal menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Seed inserts the given items only when the menu namespace is empty.
func (r *MenuRepository) Seed(ctx context.Context, items []domain.FoodItem) error {
	n, err := r.client.LLen(ctx, menuIDsKey).Result()
	if err != nil {
		return fmt.Errorf("check menu: %w", err)
	}
	if n > 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal menu item: %w", err)
		}
		pipe.Set(ctx, menuItemKey(item.ID), payload, 0)
		pipe.RPush(ctx, menuIDsKey, item.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}
