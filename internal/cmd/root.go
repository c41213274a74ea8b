package cmd

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dendrascience/rawpack/internal/config"
	"github.com/dendrascience/rawpack/internal/logging"
	"github.com/dendrascience/rawpack/version"
)

// NewRootCmd creates and returns the root cobra command for the rawpack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rawpack",
		Short: "rawpack - compress camera raw files and set the originals aside",
		Long: `rawpack finds camera raw files (CR3, RAW, NEF) under a directory, compresses
each one into a zstd archive next to it, and moves the original into a
holding directory once its archive is written.

Use subcommands to perform different operations:
  - compress: archive raw files and move the originals aside
  - restore: decompress archives back next to themselves
  - count: count raw files in a directory tree
  - seed: generate a tree of fake raw files`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupArchive := "archive"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compressCmd := NewCompressCmd()
	restoreCmd := NewRestoreCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()

	compressCmd.GroupID = groupArchive
	restoreCmd.GroupID = groupArchive
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}

// newRunLogger loads the configuration and returns a logger tagged with a
// fresh run ID, plus the run ID and a function releasing the log file.
func newRunLogger() (*slog.Logger, string, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}
	log, closeFn, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, "", nil, err
	}
	runID := uuid.NewString()
	return log.With(slog.String("run_id", runID)), runID, closeFn, nil
}
