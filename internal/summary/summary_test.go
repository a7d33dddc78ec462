package summary_test

import (
	"strings"
	"testing"

	"pr-dashboard-service/internal/domain"
	"pr-dashboard-service/internal/summary"

	"github.com/stretchr/testify/assert"
)

var fixturePR = domain.PullRequest{
	PullRequestID: 57,
	Title:         "Add caching layer",
	SourceRefName: "refs/heads/feature/cache",
	TargetRefName: "refs/heads/main",
	URL:           "https://dev.azure.com/Acme/_apis/git/repositories/r1/pullRequests/57",
	Repository: domain.Repository{
		ID:      "r1",
		Name:    "core",
		Project: domain.Project{ID: "p1", Name: "WebApp"},
	},
	Reviewers: []domain.Reviewer{
		{Identity: domain.Identity{DisplayName: "Dana Scully"}},
		{Identity: domain.Identity{DisplayName: "Fox Mulder"}},
	},
}

var fixtureItems = []domain.WorkItem{
	{ID: 101, Title: "Design cache keys", Type: "Task", Link: "https://dev.azure.com/Acme/WebApp/_workitems/edit/101"},
	{ID: 102, Title: "Wire eviction", Type: "Bug", Link: "https://dev.azure.com/Acme/WebApp/_workitems/edit/102"},
}

func TestCreatePRTextIsDeterministic(t *testing.T) {
	first := summary.CreatePRText(fixturePR, fixtureItems, "Acme")
	second := summary.CreatePRText(fixturePR, fixtureItems, "Acme")

	assert.Equal(t, first, second)
}

func TestCreatePRTextOneBulletPerWorkItem(t *testing.T) {
	text := summary.CreatePRText(fixturePR, fixtureItems, "Acme")

	assert.Equal(t, len(fixtureItems), strings.Count(text, "<li>"))

	// Input order is preserved.
	assert.Less(t, strings.Index(text, "Design cache keys"), strings.Index(text, "Wire eviction"))
}

func TestCreatePRTextContent(t *testing.T) {
	text := summary.CreatePRText(fixturePR, fixtureItems, "Acme")

	// Repository name as a link.
	assert.Contains(t, text, `<a href="https://dev.azure.com/Acme/WebApp/_git/core">core</a>`)

	// Branch names with the refs/heads/ prefix stripped.
	assert.Contains(t, text, "Branch Origin: feature/cache")
	assert.Contains(t, text, "Branch Target: main")
	assert.NotContains(t, text, "refs/heads/")

	// PR link labeled with id and title.
	assert.Contains(t, text, ">#57 - Add caching layer</a>")

	// Work item bullets carry type, id and link.
	assert.Contains(t, text, `<li>Task <a href="https://dev.azure.com/Acme/WebApp/_workitems/edit/101">#101</a>: Design cache keys</li>`)

	// Comma-joined reviewer display names.
	assert.Contains(t, text, "Reviewers: Dana Scully, Fox Mulder")
}

func TestCreatePRTextEscapesMarkup(t *testing.T) {
	pr := fixturePR
	pr.Title = `Fix <script> & "quotes"`

	text := summary.CreatePRText(pr, nil, "Acme")

	assert.NotContains(t, text, "<script>")
	assert.Contains(t, text, "&lt;script&gt;")
}

func TestCreatePRTextNoWorkItems(t *testing.T) {
	text := summary.CreatePRText(fixturePR, nil, "Acme")

	assert.NotContains(t, text, "<li>")
	assert.Contains(t, text, "Branch Origin: feature/cache")
}
