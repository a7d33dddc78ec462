// Package prurl decomposes an Azure DevOps pull request web URL into its
// constituent identifiers.
package prurl

import (
	"fmt"
	"regexp"

	"pr-dashboard-service/internal/domain"
)

var prURLPattern = regexp.MustCompile(
	`https://dev\.azure\.com/([^/]+)/([^/]+)/_git/([^/]+)/pullrequest/(\d+)`)

// Extract parses a URL of the shape
// https://dev.azure.com/{organization}/{project}/_git/{repository}/pullrequest/{id}.
// Anything else fails with domain.ErrInvalidPRURL; no existence check is
// performed against the API.
func Extract(url string) (domain.PRIdentifier, error) {
	match := prURLPattern.FindStringSubmatch(url)
	if match == nil {
		return domain.PRIdentifier{}, fmt.Errorf("%w: %q", domain.ErrInvalidPRURL, url)
	}

	return domain.PRIdentifier{
		Organization:  match[1],
		Project:       match[2],
		Repository:    match[3],
		PullRequestID: match[4],
	}, nil
}
