package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the repositories.
const (
	FoodsCollection  = "foods"
	OrdersCollection = "orders"
)

// InitMongo connects to the document store with Server API v1 and pings it
// with a bounded timeout. The returned client is usable even when the ping
// error is non-nil: callers may treat a connectivity failure at startup as
// soft and let the ping monitor report recovery.
func InitMongo(uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return client, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
