package http

import (
	"encoding/json"
	"net/http"

	"pr-dashboard-service/internal/domain"
)

type organizationsRequest struct {
	Token string `json:"token"`
}

type projectsRequest struct {
	Token        string `json:"token"`
	Organization string `json:"organization"`
}

type repositoriesRequest struct {
	Token        string `json:"token"`
	Organization string `json:"organization"`
	Project      string `json:"project"`
}

type pullRequestsRequest struct {
	Token        string `json:"token"`
	Organization string `json:"organization"`
	Project      string `json:"project"`
	RepositoryID string `json:"repositoryId"`
	Status       string `json:"status"`
}

type pullRequestTasksRequest struct {
	Token         string `json:"token"`
	Organization  string `json:"organization"`
	Project       string `json:"project"`
	RepositoryID  string `json:"repositoryId"`
	PullRequestID string `json:"pullRequestId"`
}

func (h *Handler) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	var req organizationsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	token := h.token(r, req.Token)
	if token == "" {
		h.respondValidationError(w, r, "Token is required")
		return
	}

	orgs, err := h.azureService.Organizations(r.Context(), token)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if orgs == nil {
		orgs = []domain.Organization{}
	}

	h.respondJSON(w, r, http.StatusOK, orgs)
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	var req projectsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	token := h.token(r, req.Token)
	organization := h.organization(r, req.Organization)
	if token == "" || organization == "" {
		h.respondValidationError(w, r, "Token and organization are required")
		return
	}

	projects, err := h.azureService.Projects(r.Context(), token, organization)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, rawArray(projects))
}

func (h *Handler) handleRepositories(w http.ResponseWriter, r *http.Request) {
	var req repositoriesRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	token := h.token(r, req.Token)
	organization := h.organization(r, req.Organization)
	if token == "" || organization == "" || req.Project == "" {
		h.respondValidationError(w, r, "Token, organization, and project are required")
		return
	}

	repos, err := h.azureService.Repositories(r.Context(), token, organization, req.Project)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, rawArray(repos))
}

func (h *Handler) handlePullRequests(w http.ResponseWriter, r *http.Request) {
	var req pullRequestsRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	token := h.token(r, req.Token)
	organization := h.organization(r, req.Organization)
	if token == "" || organization == "" || req.Project == "" || req.RepositoryID == "" {
		h.respondValidationError(w, r, "Token, organization, project, and repositoryId are required")
		return
	}

	status := req.Status
	if status == "" {
		status = string(domain.StatusActive)
	}
	if !domain.ValidStatus(status) {
		h.respondValidationError(w, r, "Status must be one of: active, abandoned, completed, all")
		return
	}

	prs, err := h.azureService.PullRequests(r.Context(), token, organization, req.Project, req.RepositoryID, status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, rawArray(prs))
}

func (h *Handler) handlePullRequestTasks(w http.ResponseWriter, r *http.Request) {
	var req pullRequestTasksRequest
	if err := decodeBody(r, &req); err != nil {
		h.respondValidationError(w, r, "invalid json body")
		return
	}

	token := h.token(r, req.Token)
	organization := h.organization(r, req.Organization)
	if token == "" || organization == "" || req.Project == "" || req.RepositoryID == "" || req.PullRequestID == "" {
		h.respondValidationError(w, r, "Token, organization, project, repositoryId and pullRequestId are required")
		return
	}

	items, err := h.azureService.PullRequestWorkItems(r.Context(), token, organization,
		req.Project, req.RepositoryID, req.PullRequestID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// No linked work items is an informational state, not an error.
	if len(items) == 0 {
		h.respondJSON(w, r, http.StatusOK, messageResponse{Message: "No work items linked to this pull request."})
		return
	}

	h.respondJSON(w, r, http.StatusOK, items)
}

// rawArray keeps empty upstream results rendering as [] rather than null.
func rawArray(values []json.RawMessage) []json.RawMessage {
	if values == nil {
		return []json.RawMessage{}
	}
	return values
}
