package git_test

import (
	"errors"
	"testing"

	"github.com/branchctx/prcontext/git"
	"github.com/branchctx/prcontext/git/mockgit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRefsSingleFetch(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectFetch("origin", "main", "a", "b")

	err := git.SyncRefs(mock, "origin", "main", []string{"a", "b"})
	require.NoError(t, err)
	mock.ExpectationsMet()
}

func TestSyncRefsKeepsDuplicates(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectFetch("origin", "main", "a", "a")

	err := git.SyncRefs(mock, "origin", "main", []string{"a", "a"})
	require.NoError(t, err)
	mock.ExpectationsMet()
}

func TestSyncRefsFailure(t *testing.T) {
	mock := mockgit.NewMockGit(t)
	mock.ExpectFetch("origin", "main", "missing").
		Fail(errors.New("exit status 128"), "fatal: couldn't find remote ref refs/heads/missing")

	err := git.SyncRefs(mock, "origin", "main", []string{"missing"})
	require.Error(t, err)

	var syncErr *git.SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Contains(t, syncErr.Error(), "couldn't find remote ref")
	mock.ExpectationsMet()
}
