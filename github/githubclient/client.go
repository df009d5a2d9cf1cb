package githubclient

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/branchctx/prcontext/config"
	"github.com/branchctx/prcontext/github"
	gh "github.com/google/go-github/v68/github"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const requestTimeout = 30 * time.Second

// TokenEnv is the environment variable holding the GitHub credential.
const TokenEnv = "GITHUB_TOKEN"

// TokenFromEnv returns the GitHub credential. Its absence fails the run
// before any network call is attempted.
func TokenFromEnv() (string, error) {
	token := os.Getenv(TokenEnv)
	if token == "" {
		return "", config.ConfigurationErrorf("%s environment variable is required", TokenEnv)
	}
	return token, nil
}

// NewGitHubClient returns a PullRequestSource backed by the GitHub REST
// API. The token must already be validated by the caller; enterprise hosts
// detected from the remote are routed through their /api/v3 endpoints.
func NewGitHubClient(ctx context.Context, cfg *config.Config, token string) (*client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = requestTimeout

	api := gh.NewClient(tc)
	if cfg.Repo.GitHubHost != "" && cfg.Repo.GitHubHost != "github.com" {
		baseURL := fmt.Sprintf("https://%s/api/v3/", cfg.Repo.GitHubHost)
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", cfg.Repo.GitHubHost)
		var err error
		api, err = api.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return nil, config.ConfigurationErrorf(
				"invalid github host %q: %v", cfg.Repo.GitHubHost, err)
		}
	}

	return &client{
		config: cfg,
		api:    api,
	}, nil
}

type client struct {
	config *config.Config
	api    *gh.Client
}

// FindOpenPullRequest lists open pull requests with head owner:branch and
// returns the first entry in API response order. No sort is imposed: the
// API conventionally returns the most recent match first but does not
// guarantee it.
func (c *client) FindOpenPullRequest(ctx context.Context, owner string, repo string, branch string) (*github.PullRequestSummary, error) {
	if c.config.User != nil && c.config.User.LogGitHubCalls {
		fmt.Printf("> github list pull requests head=%s:%s\n", owner, branch)
	}

	opts := &gh.PullRequestListOptions{
		State: "open",
		Head:  fmt.Sprintf("%s:%s", owner, branch),
		ListOptions: gh.ListOptions{
			PerPage: 1,
		},
	}
	prs, _, err := c.api.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, &github.APIError{Branch: branch, Err: err}
	}
	if len(prs) == 0 {
		log.Debug().Str("branch", branch).Msg("no open pull request")
		return nil, nil
	}

	return summaryFromPullRequest(prs[0]), nil
}

func summaryFromPullRequest(pr *gh.PullRequest) *github.PullRequestSummary {
	author := ""
	if user := pr.GetUser(); user != nil {
		author = user.GetLogin()
	}

	return &github.PullRequestSummary{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Author: author,
		State:  pr.GetState(),
		URL:    pr.GetHTMLURL(),
		Body:   pr.GetBody(),
	}
}
