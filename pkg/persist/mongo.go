package persist

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures the MongoDB-backed store.
type MongoConfig struct {
	URI        string
	Database   string // defaults to "flowcanvas"
	Collection string // defaults to "documents"
}

// MongoKV stores payloads in a MongoDB collection, one document per key with
// the key as _id. Writes are upserts, so Set has last-write-wins semantics
// matching the other backends.
type MongoKV struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoDoc is the stored document shape.
type mongoDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// NewMongoKV connects to MongoDB and verifies the connection with a ping.
func NewMongoKV(ctx context.Context, cfg MongoConfig) (*MongoKV, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := cfg.Database
	if db == "" {
		db = "flowcanvas"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "documents"
	}

	return &MongoKV{
		client: client,
		coll:   client.Database(db).Collection(coll),
	}, nil
}

// Get retrieves the value for key.
func (s *MongoKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data, true, nil
}

// Set upserts the value under key.
func (s *MongoKV) Set(ctx context.Context, key string, data []byte) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"data": data}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes the value for key.
func (s *MongoKV) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Close disconnects the underlying client.
func (s *MongoKV) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoKV implements KV.
var _ KV = (*MongoKV)(nil)
