package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warungkita/food-ordering/internal/core/domain"
)

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menuCollection)}
}

type foodItemDoc struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	Category    string  `bson:"category"`
	Image       string  `bson:"image,omitempty"`
	Available   bool    `bson:"available"`
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.FoodItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.FoodItem
	for cur.Next(ctx) {
		var doc foodItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, domain.FoodItem{
			ID:          doc.ID,
			Name:        doc.Name,
			Description: doc.Description,
			Price:       doc.Price,
			Category:    doc.Category,
			Image:       doc.Image,
			Available:   doc.Available,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu: %w", err)
	}
	return items, nil
}

// Seed inserts the given items only when the menu collection is empty.
func (r *MenuRepository) Seed(ctx context.Context, items []domain.FoodItem) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count menu: %w", err)
	}
	if n > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		docs = append(docs, foodItemDoc{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
			Image:       it.Image,
			Available:   it.Available,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}
