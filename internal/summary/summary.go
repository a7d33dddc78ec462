// Package summary renders a pull request and its resolved work items into a
// shareable rich-text block. The output is an HTML fragment because the
// dashboard copies it to the clipboard as text/html.
package summary

import (
	"fmt"
	"html"
	"strings"

	"pr-dashboard-service/internal/domain"
)

const refsHeadsPrefix = "refs/heads/"

// CreatePRText is pure and deterministic: the same pull request, work items
// and organization always produce the same bytes. One bullet line is emitted
// per work item, in input order.
func CreatePRText(pr domain.PullRequest, workItems []domain.WorkItem, organization string) string {
	var b strings.Builder

	repoLink := fmt.Sprintf("https://dev.azure.com/%s/%s/_git/%s",
		organization, pr.Repository.Project.Name, pr.Repository.Name)
	fmt.Fprintf(&b, "<p>Repository: <a href=%q>%s</a></p>\n",
		repoLink, html.EscapeString(pr.Repository.Name))

	b.WriteString("<ul>\n")
	for _, item := range workItems {
		fmt.Fprintf(&b, "<li>%s <a href=%q>#%d</a>: %s</li>\n",
			html.EscapeString(item.Type), item.Link, item.ID, html.EscapeString(item.Title))
	}
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<p>Branch Origin: %s</p>\n",
		html.EscapeString(strings.TrimPrefix(pr.SourceRefName, refsHeadsPrefix)))
	fmt.Fprintf(&b, "<p>Branch Target: %s</p>\n",
		html.EscapeString(strings.TrimPrefix(pr.TargetRefName, refsHeadsPrefix)))

	fmt.Fprintf(&b, "<p>Link PR: <a href=%q>#%d - %s</a></p>\n",
		pr.URL, pr.PullRequestID, html.EscapeString(pr.Title))

	names := make([]string, len(pr.Reviewers))
	for i, reviewer := range pr.Reviewers {
		names[i] = html.EscapeString(reviewer.DisplayName)
	}
	fmt.Fprintf(&b, "<p>Reviewers: %s</p>", strings.Join(names, ", "))

	return b.String()
}
