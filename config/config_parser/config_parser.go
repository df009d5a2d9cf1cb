package config_parser

import (
	"os"
	"path"
	"path/filepath"

	"github.com/branchctx/prcontext/config"
	"github.com/branchctx/prcontext/git"
	"github.com/ejoffe/rake"
)

// ParseConfig loads the layered run configuration: struct defaults, the
// origin remote autodetect, and the repository and user YAML files. The
// resolved repository identity is written back to .prcontext.yml.
func ParseConfig(gitcmd git.GitInterface) (*config.Config, error) {
	cfg := config.EmptyConfig()

	remote := NewGitHubRemoteSource(cfg, gitcmd)

	rake.LoadSources(cfg.Repo,
		rake.DefaultSource(),
		remote,
		rake.YamlFileSource(RepoConfigFilePath(gitcmd)),
		rake.YamlFileWriter(RepoConfigFilePath(gitcmd)),
	)
	if cfg.Repo.GitHubRepoOwner == "" || cfg.Repo.GitHubRepoName == "" {
		if remote.Remotes() == "" {
			return nil, config.ConfigurationErrorf(
				"no origin remote configured - set githubRepoOwner and githubRepoName in .prcontext.yml")
		}
		return nil, config.ConfigurationErrorf(
			"unable to parse repository owner and name from remote:\n%s", remote.Remotes())
	}

	rake.LoadSources(cfg.User,
		rake.DefaultSource())
	if userFile := UserConfigFilePath(); userFile != "" {
		rake.LoadSources(cfg.User,
			rake.YamlFileSource(userFile))
	}
	rake.LoadSources(cfg.User,
		NewEnvSource())

	return cfg, nil
}

func RepoConfigFilePath(gitcmd git.GitInterface) string {
	rootdir := gitcmd.RootDir()
	return filepath.Clean(path.Join(rootdir, ".prcontext.yml"))
}

// UserConfigFilePath returns the per user config location, or empty when
// the home directory cannot be determined.
func UserConfigFilePath() string {
	rootdir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Clean(path.Join(rootdir, ".prcontext.yml"))
}
