package handlers_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore implements handlers.Store with overridable behavior per test.
type fakeStore struct {
	createFunc      func(ctx context.Context, collection string, doc any) (string, error)
	getFunc         func(ctx context.Context, collection string, filter bson.M, limit int64) ([]map[string]any, error)
	nameFunc        func() string
	collectionsFunc func(ctx context.Context) ([]string, error)
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	if f.createFunc == nil {
		return "fake-id", nil
	}
	return f.createFunc(ctx, collection, doc)
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]map[string]any, error) {
	if f.getFunc == nil {
		return nil, nil
	}
	return f.getFunc(ctx, collection, filter, limit)
}

func (f *fakeStore) Name() string {
	if f.nameFunc == nil {
		return "testdb"
	}
	return f.nameFunc()
}

func (f *fakeStore) CollectionNames(ctx context.Context) ([]string, error) {
	if f.collectionsFunc == nil {
		return nil, nil
	}
	return f.collectionsFunc(ctx)
}
