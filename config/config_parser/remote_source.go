package config_parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/branchctx/prcontext/config"
	"github.com/branchctx/prcontext/git"
	"github.com/rs/zerolog/log"
)

type remoteSource struct {
	gitcmd git.GitInterface
	config *config.Config

	// remotes holds the raw `git remote -v` output so the caller can name
	// the unparsed remote in its error message.
	remotes string
}

func NewGitHubRemoteSource(config *config.Config, gitcmd git.GitInterface) *remoteSource {
	return &remoteSource{
		gitcmd: gitcmd,
		config: config,
	}
}

func (s *remoteSource) Load(_ interface{}) {
	var output string
	err := s.gitcmd.Git("remote -v", &output)
	if err != nil {
		log.Debug().Err(err).Msg("remoteSource :: git remote -v failed")
		return
	}
	s.remotes = output
	lines := strings.Split(output, "\n")

	for _, line := range lines {
		githubHost, repoOwner, repoName, match := getRepoDetailsFromRemote(line)
		if match {
			s.config.Repo.GitHubHost = githubHost
			s.config.Repo.GitHubRepoOwner = repoOwner
			s.config.Repo.GitHubRepoName = repoName
			break
		}
	}
}

// Remotes returns the raw remote listing seen during Load.
func (s *remoteSource) Remotes() string {
	return s.remotes
}

func getRepoDetailsFromRemote(remote string) (string, string, string, bool) {
	// Allows "https://", "ssh://" or no protocol at all (this means ssh)
	protocolFormat := `(?:(https://)|(ssh://))?`
	// This may or may not be present in the address
	userFormat := `(git@)?`
	// "/" is expected in "http://" or "ssh://" protocol, when no protocol given
	// it should be ":"
	repoFormat := `(?P<githubHost>[a-z0-9._\-]+)(/|:)(?P<repoOwner>[\w-]+)/(?P<repoName>[\w-]+)`
	// This is neither required in https access nor in ssh one
	suffixFormat := `(.git)?`
	regexFormat := fmt.Sprintf(`^origin\s+%s%s%s%s \(push\)`,
		protocolFormat, userFormat, repoFormat, suffixFormat)
	regex := regexp.MustCompile(regexFormat)
	matches := regex.FindStringSubmatch(remote)
	if matches != nil {
		githubHostIndex := regex.SubexpIndex("githubHost")
		repoOwnerIndex := regex.SubexpIndex("repoOwner")
		repoNameIndex := regex.SubexpIndex("repoName")
		return matches[githubHostIndex], matches[repoOwnerIndex], matches[repoNameIndex], true
	}
	return "", "", "", false
}
