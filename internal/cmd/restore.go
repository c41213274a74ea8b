package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/dendrascience/rawpack/util"
)

// NewRestoreCmd creates and returns the restore subcommand for the rawpack CLI.
func NewRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore PATH...",
		Short: "Decompress archives back next to themselves",
		Long: `Decompress .zst archives written by compress. Each PATH is an archive or a
directory searched recursively for archives. "IMG_0001.CR3.zst" is restored
to "IMG_0001.CR3" in the same directory (or "IMG_0001-1.CR3" if that name is
taken). Archives are left in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, _, closeLog, err := newRunLogger()
			if err != nil {
				return err
			}
			defer closeLog()
			return runRestore(log, args)
		},
	}
}

func runRestore(log *slog.Logger, paths []string) error {
	var errs *multierror.Error
	for _, archive := range archivesIn(paths, &errs) {
		dest, err := util.DecompressFile(archive)
		if err != nil {
			log.Error("failed to restore archive", slog.String("archive", archive), slog.Any("error", err))
			errs = multierror.Append(errs, err)
			continue
		}
		log.Info("restored archive", slog.String("archive", archive), slog.String("file", dest))
	}
	return errs.ErrorOrNil()
}

// archivesIn expands directories into the archives they contain.
func archivesIn(paths []string, errs **multierror.Error) []string {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			*errs = multierror.Append(*errs, err)
			continue
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := util.Walk(p)
		if err != nil {
			*errs = multierror.Append(*errs, fmt.Errorf("walk %s: %w", p, err))
			continue
		}
		for _, e := range entries {
			if e.IsFile() && util.IsArchive(e.Path) {
				out = append(out, e.Path)
			}
		}
	}
	return out
}
