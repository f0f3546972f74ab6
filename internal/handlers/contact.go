package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nikhilcs/cs-portfolio-api/internal/models"
)

// ContactHandler persists contact form submissions. Unlike the read
// endpoints this path does not fail open: a lost submission must be visible
// to the caller.
type ContactHandler struct {
	store    Store
	validate *validator.Validate
}

func NewContactHandler(store Store) *ContactHandler {
	return &ContactHandler{store: store, validate: validator.New()}
}

type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(msg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondDetail(w, http.StatusUnprocessableEntity, validationDetail(verrs))
			return
		}
		respondDetail(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	if h.store == nil {
		respondDetail(w, http.StatusInternalServerError, "Unable to submit right now: database not configured")
		return
	}
	if _, err := h.store.CreateDocument(r.Context(), "contactmessage", msg); err != nil {
		respondDetail(w, http.StatusInternalServerError, "Unable to submit right now: "+truncate(err.Error(), 100))
		return
	}

	respondJSON(w, http.StatusOK, contactResponse{Status: "ok", Message: "Thank you! We'll reach out shortly."})
}

// validationDetail renders validator errors into one field-level message
// string.
func validationDetail(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid URL", err.Field()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
