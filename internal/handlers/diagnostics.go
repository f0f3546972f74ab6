package handlers

import (
	"net/http"
	"os"
)

// DiagnosticsHandler answers /test with a status snapshot for debugging
// deployments. It never fails: every sub-check is guarded so one broken
// field cannot take down the rest of the report.
type DiagnosticsHandler struct {
	store Store
}

func NewDiagnosticsHandler(store Store) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store}
}

func (h *DiagnosticsHandler) Check(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store != nil {
		resp["database"] = "✅ Available"
		resp["connection_status"] = "Connected"
		if name := h.store.Name(); name != "" {
			resp["connection_status"] = "Connected to " + name
		}
		if names, err := h.store.CollectionNames(r.Context()); err != nil {
			resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if names == nil {
				names = []string{}
			}
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		resp["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		resp["database_name"] = "✅ Set"
	}

	respondJSON(w, http.StatusOK, resp)
}
