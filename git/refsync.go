package git

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// SyncError is fatal: when the tracking refs cannot be updated no diff or
// pull request lookup is meaningful for the run.
type SyncError struct {
	Output string
	Err    error
}

func (e *SyncError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("ref sync failed: %s", e.Output)
	}
	return fmt.Sprintf("ref sync failed: %v", e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// SyncRefs updates the remote tracking refs for the base branch and every
// requested branch in a single fetch. Refspecs are forced so a tracking ref
// is overwritten even when remote history diverged; nothing here ever
// touches the current branch, index, or working tree. Requested branches
// are passed through as given, duplicates included.
func SyncRefs(gitcmd GitInterface, remote string, baseBranch string, branches []string) error {
	refspecs := make([]string, 0, len(branches)+1)
	for _, branch := range append([]string{baseBranch}, branches...) {
		refspecs = append(refspecs,
			fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch))
	}

	fetchCommand := fmt.Sprintf("fetch --no-tags %s %s", remote, strings.Join(refspecs, " "))
	log.Debug().Str("remote", remote).Strs("refspecs", refspecs).Msg("SyncRefs")

	var output string
	if err := gitcmd.Git(fetchCommand, &output); err != nil {
		return &SyncError{Output: output, Err: err}
	}
	return nil
}
