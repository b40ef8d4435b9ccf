package mongodb

import (
	"context"
	"fmt"

	"github.com/architeacher/device-inventory/internal/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const uniqueNameIndex = "uniq_name"

// Connect dials the document store, verifies it is reachable and returns the
// device collection with its uniqueness index in place.
func Connect(ctx context.Context, cfg config.StorageConfig) (*mongo.Client, *mongo.Collection, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to storage: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, fmt.Errorf("pinging storage: %w", err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	if err := ensureIndexes(ctx, collection); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, nil, err
	}

	return client, collection, nil
}

// ensureIndexes keeps device names unique at the storage level, closing the
// race window left open by read-then-insert callers.
func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName(uniqueNameIndex),
	})
	if err != nil {
		return fmt.Errorf("creating unique name index: %w", err)
	}

	return nil
}
