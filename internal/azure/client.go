// Package azure is a thin client for the Azure DevOps REST API. A client is
// built fresh per proxy invocation from a token and an organization and is
// never cached beyond it.
package azure

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pr-dashboard-service/internal/domain"
)

const (
	apiVersion         = "7.1-preview.1"
	accountsAPIVersion = "7.0"
	accountsURL        = "https://app.vssps.visualstudio.com/_apis/accounts"

	// requestTimeout bounds every upstream call; a stalled upstream surfaces
	// as domain.ErrUpstreamTimeout instead of hanging the proxy.
	requestTimeout = 10 * time.Second
)

// UpstreamError is a non-2xx response from Azure DevOps. The proxy surfaces
// its status code and message to the caller verbatim; it is never retried.
type UpstreamError struct {
	StatusCode int
	StatusText string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Azure DevOps API error: %d %s", e.StatusCode, e.StatusText)
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accountsURL string
	authHeader  string
}

// NewClient builds an authenticated client scoped to one organization. The
// Authorization header is Basic auth with an empty username and the personal
// access token as password.
func NewClient(httpClient *http.Client, token, organization string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     "https://dev.azure.com/" + organization,
		accountsURL: accountsURL,
		authHeader:  "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+token)),
	}
}

// valueResponse is the envelope Azure DevOps wraps list results in.
type valueResponse[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", domain.ErrUpstreamTimeout, req.URL.Path)
		}
		return fmt.Errorf("calling Azure DevOps: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding Azure DevOps response: %w", err)
	}
	return nil
}

func versioned(version string) url.Values {
	return url.Values{"api-version": []string{version}}
}

// Organizations lists the accounts the token can see. This is the one call
// that goes to the accounts host rather than the organization-scoped root.
func (c *Client) Organizations(ctx context.Context) ([]domain.Organization, error) {
	var envelope valueResponse[domain.Organization]
	if err := c.get(ctx, c.accountsURL, versioned(accountsAPIVersion), &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// Projects returns the organization's projects as raw upstream objects; the
// proxy passes them through without reshaping.
func (c *Client) Projects(ctx context.Context) ([]json.RawMessage, error) {
	var envelope valueResponse[json.RawMessage]
	if err := c.get(ctx, c.baseURL+"/_apis/projects", versioned(apiVersion), &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// Repositories returns the project's git repositories as raw upstream objects.
func (c *Client) Repositories(ctx context.Context, project string) ([]json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s/_apis/git/repositories", c.baseURL, url.PathEscape(project))
	var envelope valueResponse[json.RawMessage]
	if err := c.get(ctx, u, versioned(apiVersion), &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// PullRequests lists a repository's pull requests filtered by status as raw
// upstream objects.
func (c *Client) PullRequests(ctx context.Context, project, repositoryID, status string) ([]json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s/_apis/git/repositories/%s/pullrequests",
		c.baseURL, url.PathEscape(project), url.PathEscape(repositoryID))
	params := versioned(apiVersion)
	params.Set("searchCriteria.status", status)

	var envelope valueResponse[json.RawMessage]
	if err := c.get(ctx, u, params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// PullRequest fetches a single pull request by id.
func (c *Client) PullRequest(ctx context.Context, project, repositoryID, pullRequestID string) (domain.PullRequest, error) {
	u := fmt.Sprintf("%s/%s/_apis/git/repositories/%s/pullrequests/%s",
		c.baseURL, url.PathEscape(project), url.PathEscape(repositoryID), url.PathEscape(pullRequestID))

	var pr domain.PullRequest
	if err := c.get(ctx, u, versioned(apiVersion), &pr); err != nil {
		return domain.PullRequest{}, err
	}
	return pr, nil
}

// PullRequestWorkItems returns the bare work item references linked to a
// pull request.
func (c *Client) PullRequestWorkItems(ctx context.Context, project, repositoryID, pullRequestID string) ([]domain.WorkItemRef, error) {
	u := fmt.Sprintf("%s/%s/_apis/git/repositories/%s/pullRequests/%s/workitems",
		c.baseURL, url.PathEscape(project), url.PathEscape(repositoryID), url.PathEscape(pullRequestID))

	var envelope valueResponse[domain.WorkItemRef]
	if err := c.get(ctx, u, versioned(apiVersion), &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// WorkItemDetail is the subset of the work item payload the aggregator
// consumes. The interesting fields live under namespaced keys.
type WorkItemDetail struct {
	ID     int            `json:"id"`
	Fields WorkItemFields `json:"fields"`
}

type WorkItemFields struct {
	Title        string `json:"System.Title"`
	WorkItemType string `json:"System.WorkItemType"`
}

// WorkItems batch-fetches work item details for a set of ids, requesting
// only the given fields.
func (c *Client) WorkItems(ctx context.Context, project string, ids, fields []string) ([]WorkItemDetail, error) {
	u := fmt.Sprintf("%s/%s/_apis/wit/workitems", c.baseURL, url.PathEscape(project))
	params := versioned(apiVersion)
	params.Set("ids", strings.Join(ids, ","))
	params.Set("fields", strings.Join(fields, ","))

	var envelope valueResponse[WorkItemDetail]
	if err := c.get(ctx, u, params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Value, nil
}
