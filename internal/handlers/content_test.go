package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nikhilcs/cs-portfolio-api/internal/handlers"
)

type listBody struct {
	Data    []map[string]any `json:"data"`
	Warning string           `json:"warning"`
}

func doList(t *testing.T, h http.HandlerFunc, path string) (*httptest.ResponseRecorder, listBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListServicesHealthyStore(t *testing.T) {
	oid := primitive.NewObjectID()
	store := &fakeStore{
		getFunc: func(_ context.Context, collection string, _ bson.M, limit int64) ([]map[string]any, error) {
			require.Equal(t, "service", collection)
			require.Zero(t, limit)
			return []map[string]any{
				{"_id": oid, "title": "GST Registration & Returns"},
			}, nil
		},
	}

	w, body := doList(t, handlers.NewContentHandler(store).ListServices, "/api/services")

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Data, 1)
	assert.Equal(t, oid.Hex(), body.Data[0]["id"], "internal _id must surface as public id")
	assert.NotContains(t, body.Data[0], "_id")
	assert.Empty(t, body.Warning)
}

func TestListServicesFailingStore(t *testing.T) {
	store := &fakeStore{
		getFunc: func(context.Context, string, bson.M, int64) ([]map[string]any, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	w, body := doList(t, handlers.NewContentHandler(store).ListServices, "/api/services")

	assert.Equal(t, http.StatusOK, w.Code, "reads fail open")
	assert.Len(t, body.Data, 2)
	assert.NotEmpty(t, body.Warning)
	assert.Equal(t, "Company Incorporation", body.Data[0]["title"])
}

func TestListBlogsFailingStore(t *testing.T) {
	store := &fakeStore{
		getFunc: func(context.Context, string, bson.M, int64) ([]map[string]any, error) {
			return nil, errors.New("server selection timeout")
		},
	}

	w, body := doList(t, handlers.NewContentHandler(store).ListBlogs, "/api/blogs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Data, 2)
	assert.NotEmpty(t, body.Warning)
	assert.Equal(t, "roc-annual-filing-checklist-2024-25", body.Data[0]["slug"])
}

func TestListServicesNoStoreConfigured(t *testing.T) {
	w, body := doList(t, handlers.NewContentHandler(nil).ListServices, "/api/services")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body.Data, 2)
	assert.NotEmpty(t, body.Warning)
}

func TestListBlogsEmptyCollection(t *testing.T) {
	store := &fakeStore{
		getFunc: func(context.Context, string, bson.M, int64) ([]map[string]any, error) {
			return nil, nil
		},
	}

	w, body := doList(t, handlers.NewContentHandler(store).ListBlogs, "/api/blogs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Empty(t, body.Warning)
}

func TestWarningIsTruncated(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	store := &fakeStore{
		getFunc: func(context.Context, string, bson.M, int64) ([]map[string]any, error) {
			return nil, errors.New(string(long))
		},
	}

	_, body := doList(t, handlers.NewContentHandler(store).ListServices, "/api/services")

	assert.LessOrEqual(t, len(body.Warning), 120)
}

func TestRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handlers.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "CS Portfolio API is running", body["message"])
}
