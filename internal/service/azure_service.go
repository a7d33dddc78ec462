package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"pr-dashboard-service/internal/azure"
	"pr-dashboard-service/internal/domain"
)

// UpstreamClient is the slice of the Azure DevOps client the service uses.
// Tests substitute a fake.
type UpstreamClient interface {
	Organizations(ctx context.Context) ([]domain.Organization, error)
	Projects(ctx context.Context) ([]json.RawMessage, error)
	Repositories(ctx context.Context, project string) ([]json.RawMessage, error)
	PullRequests(ctx context.Context, project, repositoryID, status string) ([]json.RawMessage, error)
	PullRequest(ctx context.Context, project, repositoryID, pullRequestID string) (domain.PullRequest, error)
	PullRequestWorkItems(ctx context.Context, project, repositoryID, pullRequestID string) ([]domain.WorkItemRef, error)
	WorkItems(ctx context.Context, project string, ids, fields []string) ([]azure.WorkItemDetail, error)
}

// ClientFactory builds an authenticated upstream client for one invocation.
type ClientFactory func(token, organization string) UpstreamClient

// DefaultClientFactory builds real Azure DevOps clients.
func DefaultClientFactory(token, organization string) UpstreamClient {
	return azure.NewClient(http.DefaultClient, token, organization)
}

type AzureService struct {
	newClient ClientFactory
}

func NewAzureService(factory ClientFactory) *AzureService {
	if factory == nil {
		factory = DefaultClientFactory
	}
	return &AzureService{newClient: factory}
}

func (s *AzureService) Organizations(ctx context.Context, token string) ([]domain.Organization, error) {
	return s.newClient(token, "").Organizations(ctx)
}

func (s *AzureService) Projects(ctx context.Context, token, organization string) ([]json.RawMessage, error) {
	return s.newClient(token, organization).Projects(ctx)
}

func (s *AzureService) Repositories(ctx context.Context, token, organization, project string) ([]json.RawMessage, error) {
	return s.newClient(token, organization).Repositories(ctx, project)
}

func (s *AzureService) PullRequests(ctx context.Context, token, organization, project, repositoryID, status string) ([]json.RawMessage, error) {
	return s.newClient(token, organization).PullRequests(ctx, project, repositoryID, status)
}

func (s *AzureService) PullRequest(ctx context.Context, token, organization, project, repositoryID, pullRequestID string) (domain.PullRequest, error) {
	return s.newClient(token, organization).PullRequest(ctx, project, repositoryID, pullRequestID)
}

// workItemFields is what the batch details call asks for: just enough to
// render a summary line.
var workItemFields = []string{"System.Title", "System.WorkItemType"}

// PullRequestWorkItems resolves the work items linked to a pull request in
// two sequential stages: fetch the linked references, then batch-fetch the
// details of every referenced id. A pull request with no linked work items
// returns an empty slice and no error without issuing the second call;
// callers render that as an informational state, not a failure.
func (s *AzureService) PullRequestWorkItems(ctx context.Context, token, organization, project, repositoryID, pullRequestID string) ([]domain.WorkItem, error) {
	client := s.newClient(token, organization)

	refs, err := client.PullRequestWorkItems(ctx, project, repositoryID, pullRequestID)
	if err != nil {
		return nil, fmt.Errorf("fetching work items linked to the pull request: %w", err)
	}
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}

	details, err := client.WorkItems(ctx, project, ids, workItemFields)
	if err != nil {
		return nil, fmt.Errorf("fetching work item details: %w", err)
	}

	// Output follows the order of the details call, and the deep link is
	// built here: the upstream API has no web UI link in the payload.
	items := make([]domain.WorkItem, len(details))
	for i, detail := range details {
		items[i] = domain.WorkItem{
			ID:    detail.ID,
			Title: detail.Fields.Title,
			Type:  detail.Fields.WorkItemType,
			Link: fmt.Sprintf("https://dev.azure.com/%s/%s/_workitems/edit/%d",
				organization, project, detail.ID),
		}
	}
	return items, nil
}
