package git

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// DiffResult holds the three-dot comparison of a branch against the base.
type DiffResult struct {
	// ChangedFiles lists paths touched by commits unique to the branch,
	// in the order git reports them.
	ChangedFiles []string

	// UnifiedDiff is the verbatim diff text, or an in-band placeholder
	// when the comparison could not be computed.
	UnifiedDiff string
}

// CollectDiff compares remote/branch against the merge base with
// remote/base. A failed comparison degrades to a placeholder diff instead
// of an error so one bad branch does not stop the report.
func CollectDiff(gitcmd GitInterface, remote string, baseBranch string, branch string) DiffResult {
	rangeSpec := fmt.Sprintf("%s/%s...%s/%s", remote, baseBranch, remote, branch)

	var nameOnly string
	if err := gitcmd.Git("diff --name-only "+rangeSpec, &nameOnly); err != nil {
		log.Warn().Err(err).Str("range", rangeSpec).Msg("changed file list failed")
		return DiffResult{UnifiedDiff: diffUnavailable(err)}
	}

	var diff string
	if err := gitcmd.Git("diff "+rangeSpec, &diff); err != nil {
		log.Warn().Err(err).Str("range", rangeSpec).Msg("diff failed")
		return DiffResult{
			ChangedFiles: splitFileList(nameOnly),
			UnifiedDiff:  diffUnavailable(err),
		}
	}

	return DiffResult{
		ChangedFiles: splitFileList(nameOnly),
		UnifiedDiff:  diff,
	}
}

func diffUnavailable(err error) string {
	return fmt.Sprintf("(diff unavailable: %v)", err)
}

func splitFileList(output string) []string {
	var files []string
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}
