package mockclient

import (
	"context"
	"fmt"
	"testing"

	"github.com/branchctx/prcontext/github"
	"github.com/stretchr/testify/require"
)

// NewMockClient creates a PullRequestSource double with canned per-branch
// responses. Branches without a stub resolve to the no-PR sentinel.
func NewMockClient(t *testing.T) *MockClient {
	return &MockClient{
		assert: require.New(t),
		prs:    map[string]*github.PullRequestSummary{},
		errs:   map[string]error{},
	}
}

type MockClient struct {
	assert *require.Assertions
	prs    map[string]*github.PullRequestSummary
	errs   map[string]error
	calls  []string
}

func (c *MockClient) FindOpenPullRequest(ctx context.Context, owner string, repo string, branch string) (*github.PullRequestSummary, error) {
	fmt.Printf("HUB: FindOpenPullRequest %s:%s\n", owner, branch)
	c.calls = append(c.calls, branch)
	if err, ok := c.errs[branch]; ok {
		return nil, err
	}
	return c.prs[branch], nil
}

// StubPullRequest sets the pull request returned for branch.
func (c *MockClient) StubPullRequest(branch string, pr *github.PullRequestSummary) {
	c.prs[branch] = pr
}

// StubError makes the lookup for branch fail.
func (c *MockClient) StubError(branch string, err error) {
	c.errs[branch] = err
}

// AssertCalled checks the branches looked up, in call order.
func (c *MockClient) AssertCalled(branches ...string) {
	if len(branches) == 0 {
		c.assert.Empty(c.calls)
		return
	}
	c.assert.Equal(branches, c.calls)
}
