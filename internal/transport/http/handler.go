package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pr-dashboard-service/internal/azure"
	"pr-dashboard-service/internal/config"
	"pr-dashboard-service/internal/credentials"
	"pr-dashboard-service/internal/domain"
	"pr-dashboard-service/internal/service"

	"github.com/go-chi/chi/v5/middleware"
)

// errorResponse is the uniform error shape: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	azureService *service.AzureService
	creds        *credentials.Store
	source       config.CredentialSource
	logger       *slog.Logger
}

func NewHandler(azureService *service.AzureService, creds *credentials.Store, source config.CredentialSource, logger *slog.Logger) *Handler {
	return &Handler{
		azureService: azureService,
		creds:        creds,
		source:       source,
		logger:       logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write json response", "error", err)
	}
}

// respondValidationError is a 400 whose message names the required fields.
func (h *Handler) respondValidationError(w http.ResponseWriter, r *http.Request, message string) {
	h.respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: message})
}

// respondError distinguishes "upstream rejected us" (proxied status and
// message) from "our proxy broke" (500, generic message, detail logged
// server-side only).
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *azure.UpstreamError
	switch {
	case errors.As(err, &upstreamErr):
		h.respondJSON(w, r, upstreamErr.StatusCode, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUpstreamTimeout):
		h.logger.ErrorContext(r.Context(), "upstream timeout", "error", err)
		h.respondJSON(w, r, http.StatusGatewayTimeout, errorResponse{Error: "Azure DevOps request timed out"})
	default:
		h.logger.ErrorContext(r.Context(), "proxy failure", "error", err)
		h.respondJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

// token resolves the access token according to the configured credential
// source: the request body in explicit mode, the cookie tiers otherwise.
func (h *Handler) token(r *http.Request, bodyToken string) string {
	if h.source == config.CredentialSourceExplicit {
		return bodyToken
	}
	return h.creds.Token(r)
}

// organization prefers the value carried in the request body and falls back
// to the stored credential.
func (h *Handler) organization(r *http.Request, bodyOrganization string) string {
	if bodyOrganization != "" {
		return bodyOrganization
	}
	return h.creds.Organization(r)
}

// decodeBody tolerates an absent body: endpoints that can resolve everything
// from stored credentials accept bodiless requests.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

func NewSlogLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(t1).Milliseconds(),
				"bytes_written", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}

		return http.HandlerFunc(fn)
	}
}
