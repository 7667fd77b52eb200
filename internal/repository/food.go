// Package repository provides Mongo-backed persistence for the food catalog
// and order managers.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atinyakov/restaurant-management/internal/apperr"
	"github.com/atinyakov/restaurant-management/internal/models"
)

// MongoFoodRepository implements food catalog persistence against a Mongo collection.
type MongoFoodRepository struct {
	// Collection is the foods collection handle.
	Collection *mongo.Collection
}

// NewMongoFoodRepository creates a new MongoFoodRepository over the given collection.
func NewMongoFoodRepository(c *mongo.Collection) *MongoFoodRepository {
	return &MongoFoodRepository{Collection: c}
}

// BuildFoodFilter translates an optional search term and owner email into a
// Mongo query document. Search matches the name field as a case-insensitive
// substring; email matches addedBy.email exactly. An empty filter matches
// every document.
func BuildFoodFilter(search, email string) bson.M {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if email != "" {
		filter["addedBy.email"] = email
	}
	return filter
}

// FindByOwner returns every food item whose addedBy.email matches email.
func (r *MongoFoodRepository) FindByOwner(ctx context.Context, email string) ([]models.Food, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"addedBy.email": email})
	if err != nil {
		return nil, fmt.Errorf("find foods by owner: %w", err)
	}

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return foods, nil
}

// Find returns the page of food items matching the search term and owner
// email along with the total count of matching documents before pagination.
func (r *MongoFoodRepository) Find(ctx context.Context, search, email string, skip, limit int64) ([]models.Food, int64, error) {
	filter := BuildFoodFilter(search, email)
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count foods: %w", err)
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find foods: %w", err)
	}

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, 0, fmt.Errorf("decode foods: %w", err)
	}
	return foods, total, nil
}

// Insert stores a new food item and returns the generated identifier as hex.
func (r *MongoFoodRepository) Insert(ctx context.Context, food models.Food) (string, error) {
	result, err := r.Collection.InsertOne(ctx, food)
	if err != nil {
		return "", fmt.Errorf("insert food: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID fetches a single food item. Returns apperr.ErrNotFound when the id
// is not a valid object id or no document matches.
func (r *MongoFoodRepository) FindByID(ctx context.Context, id string) (*models.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var food models.Food
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find food by id: %w", err)
	}
	return &food, nil
}

// Update applies the patch as a $set on the matching item. The identifier is
// never mutable: _id and id keys are stripped from the patch before writing.
// Returns apperr.ErrNotFound when no document matches.
func (r *MongoFoodRepository) Update(ctx context.Context, id string, patch map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := r.Collection.UpdateByID(ctx, oid, bson.M{"$set": SanitizePatch(patch)})
	if err != nil {
		return fmt.Errorf("update food: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// IncrementPurchaseCount adds by to the purchase count of the referenced food
// item. It returns the number of modified documents: 0 means the id did not
// resolve to a stored item, which callers surface as a partial write.
func (r *MongoFoodRepository) IncrementPurchaseCount(ctx context.Context, id string, by int64) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := r.Collection.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"purchaseCount": by}})
	if err != nil {
		return 0, fmt.Errorf("increment purchase count: %w", err)
	}
	return result.ModifiedCount, nil
}

// SanitizePatch returns a copy of patch with identifier keys removed.
func SanitizePatch(patch map[string]any) bson.M {
	clean := bson.M{}
	for k, v := range patch {
		if k == "_id" || k == "id" {
			continue
		}
		clean[k] = v
	}
	return clean
}
