package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathExplicit(t *testing.T) {
	path := ResolvePath("/tmp/out/report.txt", "ignored", fixedTime)
	assert.Equal(t, "/tmp/out/report.txt", path)
}

func TestResolvePathDerived(t *testing.T) {
	path := ResolvePath("", "/tmp/reports", fixedTime)
	assert.Equal(t, "/tmp/reports/context_20240301_123000.txt", path)
}

func TestResolvePathUsesUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	local := time.Date(2024, 3, 1, 7, 30, 0, 0, est)
	path := ResolvePath("", ".", local)
	assert.Equal(t, filepath.Join(".", "context_20240301_123000.txt"), path)
}

func TestWriteCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "report.txt")

	resolved, size, err := Write(path, "report body\n")
	require.NoError(t, err)
	assert.Equal(t, int64(len("report body\n")), size)

	data, err := os.ReadFile(resolved)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(data))
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	// parent path is a regular file, MkdirAll must fail
	_, _, err := Write(filepath.Join(blocker, "report.txt"), "content")
	require.Error(t, err)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
}
