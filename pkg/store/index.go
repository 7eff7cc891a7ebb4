package store

import (
	"context"
	"encoding/base64"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Index records which repositories have a backlog. Each repo path is one
// diskv key under <base>/index, so registration is load-mutate-save per
// invocation with no shared in-process state.
type Index struct {
	d *diskv.Diskv
}

// OpenIndex opens the global repo index under the configured base path.
func OpenIndex(cfg Config) (*Index, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Index{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath() + "/index",
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Register adds a repo path to the index. Registering twice is a no-op.
func (ix *Index) Register(repo string) error {
	key := toIndexKey(repo)
	if ix.d.Has(key) {
		return nil
	}
	return ix.d.Write(key, []byte(repo))
}

// Unregister removes a repo path from the index.
func (ix *Index) Unregister(repo string) error {
	key := toIndexKey(repo)
	if !ix.d.Has(key) {
		return nil
	}
	return ix.d.Erase(key)
}

// Repos returns the registered repo paths, sorted.
func (ix *Index) Repos(ctx context.Context) []string {
	repos := make([]string, 0)
	for key := range ix.d.Keys(ctx.Done()) {
		val, err := ix.d.Read(key)
		if err != nil {
			continue
		}
		repos = append(repos, string(val))
	}
	sort.Strings(repos)
	return repos
}

// toIndexKey makes a filesystem-safe key from a repo path.
func toIndexKey(repo string) string {
	return base64.URLEncoding.EncodeToString([]byte(repo))
}
