package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/curiolib/curio/internal/config"
	"github.com/curiolib/curio/library"
)

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "curio" {
		t.Fatalf("expected root command name curio, got %q", rootCmd.Use)
	}
}

func TestResolveDataDirPrefersFlag(t *testing.T) {
	t.Setenv("CURIO_DATA_DIR", "/from/env")
	rootDataDir = "/from/flag"
	t.Cleanup(func() { rootDataDir = "" })

	dir, err := resolveDataDir(&config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/from/flag" {
		t.Fatalf("expected /from/flag, got %s", dir)
	}
}

func TestResolveDataDirUsesEnv(t *testing.T) {
	t.Setenv("CURIO_DATA_DIR", "/from/env")

	dir, err := resolveDataDir(&config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/from/env" {
		t.Fatalf("expected /from/env, got %s", dir)
	}
}

func TestResolveDataDirUsesConfig(t *testing.T) {
	t.Setenv("CURIO_DATA_DIR", "")

	dir, err := resolveDataDir(&config.Config{DataDir: "/from/config"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/from/config" {
		t.Fatalf("expected /from/config, got %s", dir)
	}
}

func TestOpenLibraryAppliesBackupConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CURIO_DATA_DIR", filepath.Join(home, "data"))

	configDir := filepath.Join(home, ".config", "curio")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configBody := "[backup]\non-save = false\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(configBody), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := openLibrary()
	if err != nil {
		t.Fatalf("openLibrary: %v", err)
	}
	if _, err := lib.AddItem(library.Item{Title: "Dune"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := lib.Save(); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := lib.Save(); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if got := lib.BackupCount(); got != 0 {
		t.Errorf("backups with on-save disabled = %d, want 0", got)
	}
}
