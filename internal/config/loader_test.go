package config

import (
	"path/filepath"
	"testing"
)

func TestGetSearchPathsWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	paths := GetSearchPaths()

	if len(paths) != 1 {
		t.Fatalf("GetSearchPaths() = %d paths; want 1", len(paths))
	}
	if got := filepath.Base(paths[0]); got != ".gitprompt.json" {
		t.Errorf("paths[0] = %q; want current directory .gitprompt.json", paths[0])
	}
}

func TestGetDefaultPathWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	if got := GetDefaultPath(); got != "" {
		t.Errorf("GetDefaultPath() = %q; want empty", got)
	}
}

func TestSaveAndFind(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ResetCache()
	t.Cleanup(ResetCache)

	path := GetDefaultPath()
	want := filepath.Join(home, ".config", "gitprompt", "gitprompt.json")
	if path != want {
		t.Fatalf("GetDefaultPath() = %q; want %q", path, want)
	}

	if err := Save(NewDefault(), path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	found, ok := GetPath()
	if !ok || found != path {
		t.Errorf("GetPath() = (%q, %v); want (%q, true)", found, ok, path)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Separator != " " {
		t.Errorf("Separator = %q; want %q", cfg.Separator, " ")
	}
}
