package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store is a thin adapter over a MongoDB database. Collections hold
// schemaless documents; the driver assigns an ObjectID on insert.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{client: client, db: client.Database(name)}, nil
}

func (s *Store) Close(ctx context.Context) {
	if s.client != nil {
		_ = s.client.Disconnect(ctx)
	}
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// CreateDocument inserts one document into the named collection and returns
// the store-assigned identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// GetDocuments returns documents from the named collection matching filter,
// in store order, up to limit if limit > 0.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]map[string]any, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []map[string]any
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}

// CollectionNames lists the collection names present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
