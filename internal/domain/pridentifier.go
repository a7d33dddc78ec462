package domain

// PRIdentifier is the set of identifiers parsed from a pull request web URL.
// It lets a pasted URL short-circuit the organization/project/repository
// selection flow.
type PRIdentifier struct {
	Organization  string
	Project       string
	Repository    string
	PullRequestID string
}
