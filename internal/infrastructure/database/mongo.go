package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBClient owns the process-wide Mongo connection.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects and pings; callers treat an error as fatal.
func NewMongoDBClient(ctx context.Context, uri string) (*MongoDBClient, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &MongoDBClient{Client: client}, nil
}

func (m *MongoDBClient) Database(name string) *mongo.Database {
	return m.Client.Database(name)
}

// Ping reports whether the primary is reachable.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
