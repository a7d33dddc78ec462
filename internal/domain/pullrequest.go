package domain

import "time"

type PRStatus string

const (
	StatusActive    PRStatus = "active"
	StatusAbandoned PRStatus = "abandoned"
	StatusCompleted PRStatus = "completed"
	StatusAll       PRStatus = "all"
)

// ValidStatus reports whether s is an accepted pull request status filter.
func ValidStatus(s string) bool {
	switch PRStatus(s) {
	case StatusActive, StatusAbandoned, StatusCompleted, StatusAll:
		return true
	}
	return false
}

// PullRequest mirrors the fields we consume from the Azure DevOps pull
// request payload. The proxy endpoints pass the upstream shape through
// untouched; this type exists for the pieces of the code that need to look
// inside a pull request (the summary formatter and the CLI).
type PullRequest struct {
	PullRequestID int        `json:"pullRequestId"`
	Title         string     `json:"title"`
	Status        PRStatus   `json:"status"`
	CreatedBy     Identity   `json:"createdBy"`
	CreationDate  time.Time  `json:"creationDate"`
	SourceRefName string     `json:"sourceRefName"`
	TargetRefName string     `json:"targetRefName"`
	IsDraft       bool       `json:"isDraft"`
	Repository    Repository `json:"repository"`
	Reviewers     []Reviewer `json:"reviewers"`
	URL           string     `json:"url"`
}

type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName"`
	ImageURL    string `json:"imageUrl"`
}

type Reviewer struct {
	Identity
	Vote        int  `json:"vote"`
	IsRequired  bool `json:"isRequired"`
	HasDeclined bool `json:"hasDeclined"`
}

type Repository struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	WebURL  string  `json:"webUrl"`
	Project Project `json:"project"`
}

type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}
