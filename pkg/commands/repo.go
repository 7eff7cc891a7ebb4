package commands

import (
	"tableflip.dev/backlog/pkg/store"
)

// repoBacklogPath resolves the backlog file and repo root for the enclosing
// repository.
func repoBacklogPath() (path string, root string, err error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", "", err
	}
	root, err = store.CurrentRepoRoot()
	if err != nil {
		return "", "", err
	}
	return store.BacklogPath(cfg, root), root, nil
}
