package realgit

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/branchctx/prcontext/config"
	"github.com/rs/zerolog/log"
)

// NewGitCmd returns a new git cmd instance rooted at the repository
// toplevel. Fails when git is not installed or the working directory is
// not inside a git repository.
func NewGitCmd(cfg *config.Config) (*gitcmd, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, &config.ConfigurationError{Reason: "git not found in PATH"}
	}

	initcmd := &gitcmd{
		config: cfg,
	}
	var rootdir string
	err := initcmd.Git("rev-parse --show-toplevel", &rootdir)
	if err != nil {
		return nil, &config.ConfigurationError{Reason: "not inside a git repository"}
	}
	rootdir = strings.TrimSpace(rootdir)

	return &gitcmd{
		config:  cfg,
		rootdir: rootdir,
	}, nil
}

type gitcmd struct {
	config  *config.Config
	rootdir string
}

func (c *gitcmd) Git(argStr string, output *string) error {
	// runs a git command
	//  if output is not nil it will be set to the output of the command

	log.Debug().Msg("git " + argStr)
	if c.config.User != nil && c.config.User.LogGitCommands {
		fmt.Printf("> git %s\n", argStr)
	}
	args := strings.Split(argStr, " ")
	cmd := exec.Command("git", args...)
	cmd.Dir = c.rootdir

	out, err := cmd.CombinedOutput()
	if output != nil {
		*output = strings.TrimSpace(string(out))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "git error: %s", string(out))
		return err
	}
	return nil
}

func (c *gitcmd) RootDir() string {
	return c.rootdir
}
