package git_test

import (
	"errors"
	"testing"

	"github.com/branchctx/prcontext/git"
	"github.com/branchctx/prcontext/git/mockgit"
	"github.com/stretchr/testify/assert"
)

func TestCollectDiff(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectDiffNameOnly("origin/main...origin/feature/x").
		Respond("cmd/main.go\nreport/report.go")
	mock.ExpectDiff("origin/main...origin/feature/x").
		Respond("diff --git a/cmd/main.go b/cmd/main.go\n+added line")

	result := git.CollectDiff(mock, "origin", "main", "feature/x")
	assert.Equal(t, []string{"cmd/main.go", "report/report.go"}, result.ChangedFiles)
	assert.Equal(t, "diff --git a/cmd/main.go b/cmd/main.go\n+added line", result.UnifiedDiff)
	mock.ExpectationsMet()
}

func TestCollectDiffNoChanges(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectDiffNameOnly("origin/main...origin/local-only").Respond("")
	mock.ExpectDiff("origin/main...origin/local-only").Respond("")

	result := git.CollectDiff(mock, "origin", "main", "local-only")
	assert.Empty(t, result.ChangedFiles)
	assert.Empty(t, result.UnifiedDiff)
	mock.ExpectationsMet()
}

func TestCollectDiffFileListFailure(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectDiffNameOnly("origin/main...origin/gone").
		Fail(errors.New("exit status 128"), "fatal: bad revision")

	result := git.CollectDiff(mock, "origin", "main", "gone")
	assert.Empty(t, result.ChangedFiles)
	assert.Equal(t, "(diff unavailable: exit status 128)", result.UnifiedDiff)
	mock.ExpectationsMet()
}

func TestCollectDiffTextFailureKeepsFiles(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectDiffNameOnly("origin/main...origin/flaky").Respond("a.go")
	mock.ExpectDiff("origin/main...origin/flaky").
		Fail(errors.New("exit status 128"), "fatal: bad revision")

	result := git.CollectDiff(mock, "origin", "main", "flaky")
	assert.Equal(t, []string{"a.go"}, result.ChangedFiles)
	assert.Equal(t, "(diff unavailable: exit status 128)", result.UnifiedDiff)
	mock.ExpectationsMet()
}
