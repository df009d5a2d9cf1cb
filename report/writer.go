package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteError is fatal: the computed report was not persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write report to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ResolvePath returns the explicit path when given, otherwise a
// timestamp-derived file name under outputDir.
func ResolvePath(explicit string, outputDir string, generatedAt time.Time) string {
	if explicit != "" {
		return explicit
	}
	name := fmt.Sprintf("context_%s.txt", generatedAt.UTC().Format("20060102_150405"))
	return filepath.Join(outputDir, name)
}

// Write persists the report, creating missing directories, and returns the
// resolved path and the file's byte size.
func Write(path string, content string) (string, int64, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", 0, &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", 0, &WriteError{Path: path, Err: err}
	}

	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}
	return resolved, int64(len(content)), nil
}
