// Package export serializes the currently visible task view to a JSON file.
// It receives already-derived data: deciding which tasks are visible is the
// session's job, and reporting the outcome is the caller's.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

// Clock lets tests pin the timestamp in generated filenames.
type Clock func() time.Time

// Writer writes export artifacts into a target directory.
type Writer struct {
	Dir string
	Now Clock
}

// NewWriter builds a writer targeting dir ("" = current directory).
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Now: time.Now}
}

// Filename returns the artifact name for the given instant:
// tasks_<ISO-8601 UTC, ':' and '.' replaced, seconds precision>.json.
func Filename(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05")
	stamp = strings.ReplaceAll(stamp, ":", "-")
	return "tasks_" + stamp + ".json"
}

// Write serializes tasks to a pretty-printed JSON array file. Empty input
// produces no artifact and reports false. The file is written to a
// temporary name and renamed into place so a failure mid-write leaves no
// partial artifact behind.
func (w *Writer) Write(tasks []task.Task) (bool, string, error) {
	if len(tasks) == 0 {
		return false, "", nil
	}
	raw, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return false, "", fmt.Errorf("export: encode: %w", err)
	}
	raw = append(raw, '\n')

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	path := filepath.Join(w.Dir, Filename(now()))
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tasks-export-*")
	if err != nil {
		return false, "", fmt.Errorf("export: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, "", fmt.Errorf("export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, "", fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, "", fmt.Errorf("export: %w", err)
	}
	return true, path, nil
}
