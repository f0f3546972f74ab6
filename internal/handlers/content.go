package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentHandler serves the public read endpoints for services and blog
// posts. Reads fail open: if the store is down the handler answers 200 with
// a small static fallback list and a warning instead of an error.
type ContentHandler struct {
	store Store
}

func NewContentHandler(store Store) *ContentHandler {
	return &ContentHandler{store: store}
}

type listResponse struct {
	Data    []map[string]any `json:"data"`
	Warning string           `json:"warning,omitempty"`
}

var errStoreNotConfigured = errors.New("database not configured")

// Static content served when the store is unreachable. Marketing pages must
// render something even with the database down.
var fallbackServices = []map[string]any{
	{"title": "Company Incorporation", "summary": "End-to-end incorporation with MCA.", "icon": "building2", "starting_price": 8999, "tags": []string{"startup"}},
	{"title": "Annual ROC Filings", "summary": "AOC-4, MGT-7 & more.", "icon": "file-text", "starting_price": 4999, "tags": []string{"compliance"}},
}

var fallbackBlogs = []map[string]any{
	{"title": "ROC Annual Filing Checklist for Private Companies (FY 2024-25)", "slug": "roc-annual-filing-checklist-2024-25", "excerpt": "A concise checklist to complete AOC-4, MGT-7 and key approvals.", "tags": []string{"roc", "checklist"}},
	{"title": "DIR-3 KYC: Due Dates, Forms and Penalties", "slug": "dir-3-kyc-due-dates-forms", "excerpt": "Everything about Director KYC and how to avoid deactivation.", "tags": []string{"dir-3", "kyc"}},
}

func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "service", fallbackServices)
}

func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "blogpost", fallbackBlogs)
}

func (h *ContentHandler) list(w http.ResponseWriter, r *http.Request, collection string, fallback []map[string]any) {
	if h.store == nil {
		respondJSON(w, http.StatusOK, listResponse{Data: fallback, Warning: truncate(errStoreNotConfigured.Error(), 120)})
		return
	}

	docs, err := h.store.GetDocuments(r.Context(), collection, bson.M{}, 0)
	if err != nil {
		respondJSON(w, http.StatusOK, listResponse{Data: fallback, Warning: truncate(err.Error(), 120)})
		return
	}

	if docs == nil {
		docs = []map[string]any{}
	}
	for _, doc := range docs {
		renameID(doc)
	}
	respondJSON(w, http.StatusOK, listResponse{Data: docs})
}

// renameID moves the store-internal _id field to the public id field as a
// string.
func renameID(doc map[string]any) {
	raw, ok := doc["_id"]
	if !ok {
		return
	}
	delete(doc, "_id")
	switch v := raw.(type) {
	case primitive.ObjectID:
		doc["id"] = v.Hex()
	case string:
		doc["id"] = v
	default:
		doc["id"] = fmt.Sprint(v)
	}
}
