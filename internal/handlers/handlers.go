package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document store contract the handlers depend on. A nil Store
// means no database was configured; read handlers fall back to static
// content and the contact handler reports the write as failed.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]map[string]any, error)
	Name() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// Root reports that the API is up.
func Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "CS Portfolio API is running"})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondDetail writes an error payload in the {"detail": ...} shape the
// frontend expects.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// truncate caps s at n characters (not bytes).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
