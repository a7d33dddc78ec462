package domain

import "errors"

var (
	ErrMissingCredential = errors.New("credential not configured")
	ErrInvalidPRURL      = errors.New("invalid Azure DevOps PR URL")
	ErrUpstreamTimeout   = errors.New("azure devops request timed out")
)
