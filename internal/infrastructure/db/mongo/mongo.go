package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository operation as well as the initial
// connection handshake.
const defaultTimeout = 10 * time.Second

// Connect establishes the MongoDB client backing the inventory store,
// verifies connectivity with a ping, and returns the client together with
// the named database. Unlike the report cache, the store is mandatory:
// callers are expected to treat a failure here as fatal.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}
