package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInRepo is returned when no enclosing git repository exists.
var ErrNotInRepo = errors.New("store: not in a git repository")

// FindRepoRoot walks up from start and returns the first directory containing
// a .git entry. A plain file .git (worktrees, submodules) counts as well.
// It does not invoke the git binary.
func FindRepoRoot(start string) (string, bool) {
	dir := filepath.Clean(strings.TrimSpace(start))
	if dir == "" {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// BacklogPath returns the backlog file path for the given repo root.
func BacklogPath(cfg Config, root string) string {
	return filepath.Join(root, cfg.DirName(), cfg.FileName())
}

// CurrentBacklogPath resolves the backlog path for the repository enclosing
// the working directory.
func CurrentBacklogPath(cfg Config) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, ok := FindRepoRoot(wd)
	if !ok {
		return "", ErrNotInRepo
	}
	return BacklogPath(cfg, root), nil
}

// CurrentRepoRoot returns the enclosing repository root for the working
// directory.
func CurrentRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, ok := FindRepoRoot(wd)
	if !ok {
		return "", ErrNotInRepo
	}
	return root, nil
}
