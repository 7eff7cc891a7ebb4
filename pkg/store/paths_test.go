package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRepoRootWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok := FindRepoRoot(nested)
	if !ok {
		t.Fatalf("expected to find a repo root")
	}
	if got != root {
		t.Fatalf("expected %s, got %s", root, got)
	}
}

func TestFindRepoRootGitFile(t *testing.T) {
	// Worktrees and submodules use a plain .git file.
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, ok := FindRepoRoot(root); !ok {
		t.Fatalf("a .git file should count as a repo root")
	}
}

func TestFindRepoRootNotFound(t *testing.T) {
	if _, ok := FindRepoRoot(t.TempDir()); ok {
		t.Fatalf("bare temp dir should not resolve to a repo")
	}
	if _, ok := FindRepoRoot(""); ok {
		t.Fatalf("empty start should not resolve")
	}
}

func TestBacklogPath(t *testing.T) {
	cfg := &fileConfig{Base: "/tmp/base", Dir: ".todo", File: "backlog.json"}
	got := BacklogPath(cfg, "/src/repo")
	want := filepath.Join("/src/repo", ".todo", "backlog.json")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
