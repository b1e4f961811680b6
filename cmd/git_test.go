package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestGitStashCountOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()

	// a stray file shaped like a stash reflog must not be counted when
	// the repository metadata directory cannot be resolved
	logsDir := filepath.Join(dir, "logs", "refs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(logsDir, "stash"), []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	count, err := gitStashCount(dir)
	if err != nil {
		t.Fatalf("gitStashCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("gitStashCount() = %d; want 0", count)
	}
}
