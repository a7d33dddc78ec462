package http

import (
	"net/http"

	"pr-dashboard-service/internal/credentials"

	"github.com/go-chi/chi/v5"
)

type setCredentialRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	// Secure selects the tier: true stores HttpOnly on the server tier,
	// false stores a client-readable cookie. Defaults to true.
	Secure *bool `json:"secure"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) handleSetCredential(w http.ResponseWriter, r *http.Request) {
	var req setCredentialRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	if !credentials.KnownName(req.Name) {
		h.respondValidationError(w, r, "Unknown credential name")
		return
	}
	if req.Value == "" {
		h.respondValidationError(w, r, "Name and value are required")
		return
	}

	secure := req.Secure == nil || *req.Secure
	if secure {
		h.creds.SetServer(w, req.Name, req.Value)
	} else {
		h.creds.SetClient(w, r, req.Name, req.Value)
	}

	h.respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (h *Handler) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !credentials.KnownName(name) {
		h.respondValidationError(w, r, "Unknown credential name")
		return
	}

	// Clear both tiers: either one may hold the value.
	h.creds.RemoveClient(w, name)
	h.creds.RemoveServer(w, name)

	h.respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}
