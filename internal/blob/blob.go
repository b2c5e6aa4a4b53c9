// Package blob stores submitted code text on disk, one file per
// submission, named by the submission id.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Dir struct {
	root string
}

// New ensures the target directory exists and returns a writer rooted
// at it. Write itself never creates directories, so a directory that
// disappears or loses write permission after startup fails the write.
func New(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create codes dir: %w", err)
	}
	return &Dir{root: root}, nil
}

func (d *Dir) Path(id int64) string {
	return filepath.Join(d.root, strconv.FormatInt(id, 10)+".py")
}

// Write stores code verbatim at {root}/{id}.py, overwriting any
// previous content for the same id.
func (d *Dir) Write(id int64, code string) error {
	if err := os.WriteFile(d.Path(id), []byte(code), 0o644); err != nil {
		return fmt.Errorf("write code blob: %w", err)
	}
	return nil
}
