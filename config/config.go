package config

import (
	"fmt"

	"github.com/ejoffe/rake"
)

// Config object to hold prcontext configuration
type Config struct {
	Repo *RepoConfig
	User *UserConfig
}

// RepoConfig identifies the repository the report is generated for.
// It is auto detected from the origin remote on first run and persisted
// to .prcontext.yml in the repository root.
type RepoConfig struct {
	GitHubHost      string `default:"github.com" yaml:"githubHost"`
	GitHubRepoOwner string `yaml:"githubRepoOwner"`
	GitHubRepoName  string `yaml:"githubRepoName"`

	GitHubRemote string `default:"origin" yaml:"githubRemote"`
	BaseBranch   string `default:"main" yaml:"baseBranch"`
}

// UserConfig holds per user preferences.
type UserConfig struct {
	OutputDir string `default:"." yaml:"outputDir"`

	LogGitCommands bool `default:"false" yaml:"logGitCommands"`
	LogGitHubCalls bool `default:"false" yaml:"logGitHubCalls"`
}

func EmptyConfig() *Config {
	return &Config{
		Repo: &RepoConfig{},
		User: &UserConfig{},
	}
}

func DefaultConfig() *Config {
	cfg := EmptyConfig()
	rake.LoadSources(cfg.Repo,
		rake.DefaultSource(),
	)
	rake.LoadSources(cfg.User,
		rake.DefaultSource(),
	)
	return cfg
}

// RepoSlug returns the owner/name pair as a single string.
func (c *Config) RepoSlug() string {
	return fmt.Sprintf("%s/%s", c.Repo.GitHubRepoOwner, c.Repo.GitHubRepoName)
}
