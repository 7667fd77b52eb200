package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atinyakov/restaurant-management/internal/apperr"
)

// MongoOrderRepository implements order persistence against a Mongo collection.
// Orders are stored and returned as raw documents because callers may attach
// arbitrary fields at creation time.
type MongoOrderRepository struct {
	// Collection is the orders collection handle.
	Collection *mongo.Collection
}

// NewMongoOrderRepository creates a new MongoOrderRepository over the given collection.
func NewMongoOrderRepository(c *mongo.Collection) *MongoOrderRepository {
	return &MongoOrderRepository{Collection: c}
}

// Insert stores a new order document and returns the generated identifier as hex.
func (r *MongoOrderRepository) Insert(ctx context.Context, order map[string]any) (string, error) {
	result, err := r.Collection.InsertOne(ctx, bson.M(order))
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail returns every order whose email field matches email.
func (r *MongoOrderRepository) FindByEmail(ctx context.Context, email string) ([]map[string]any, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find orders by email: %w", err)
	}

	var orders []map[string]any
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// FindByID fetches a single order document. Returns apperr.ErrNotFound when
// the id is not a valid object id or no document matches.
func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var order map[string]any
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return order, nil
}

// Delete removes the order with the given id. Returns apperr.ErrNotFound when
// no document matched.
func (r *MongoOrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
