// Package main implements the curio CLI tool.
package main

import (
	"os"

	"github.com/curiolib/curio/internal/config"
	"github.com/curiolib/curio/internal/paths"
	"github.com/curiolib/curio/library"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "curio",
	Short:         "Curio - a personal library manager",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var rootDataDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Library data directory")
}

// resolveDataDir picks the data directory: the --data-dir flag, then
// CURIO_DATA_DIR, then the config file, then the default location.
func resolveDataDir(cfg *config.Config) (string, error) {
	if rootDataDir != "" {
		return rootDataDir, nil
	}
	if env := os.Getenv("CURIO_DATA_DIR"); env != "" {
		return env, nil
	}
	return paths.ResolveWithDefault(cfg.DataDir, paths.DefaultDataDir)
}

// openLibrary opens the library at the resolved data directory,
// loading persisted state if present, and applies the config's backup
// policy to the repository.
func openLibrary() (*library.Library, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, err
	}
	lib, err := library.Open(dir)
	if err != nil {
		return nil, err
	}
	lib.Repository().SetBackupOnSave(cfg.BackupOnSave())
	return lib, nil
}
