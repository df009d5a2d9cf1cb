package github

import (
	"context"
	"fmt"
)

// PullRequestSource finds open pull requests on the hosting service.
type PullRequestSource interface {
	// FindOpenPullRequest returns the first open pull request whose head
	// is owner:branch, or nil when none exists. The tie-break between
	// multiple matches is the first entry in API response order; by
	// convention that is the most recently updated match, but the API
	// does not guarantee any ordering.
	FindOpenPullRequest(ctx context.Context, owner string, repo string, branch string) (*PullRequestSummary, error)
}

// PullRequestSummary has the pull request fields that appear in the report.
type PullRequestSummary struct {
	Number int
	Title  string
	Author string
	State  string
	URL    string
	Body   string
}

// APIError marks a failed pull request lookup. It is recovered per branch:
// the report section is still emitted with the no-PR sentinel.
type APIError struct {
	Branch string
	Err    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pull request lookup for %q failed: %v", e.Branch, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
