package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/rawpack/util"
)

// NewCountCmd creates and returns the count subcommand for the rawpack CLI.
// It reports how many files compress would pick up, per extension.
func NewCountCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count raw files in a directory tree",
		Long: `Count the raw files compress would pick up under a directory tree,
broken down by extension, with their total size. Nothing is modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")

	return cmd
}

func runCount(out io.Writer, path string) error {
	entries, err := util.Walk(path)
	if err != nil {
		return fmt.Errorf("walk %s: %w", path, err)
	}
	allow := util.DefaultAllowList()
	candidates := util.SelectCandidates(entries, allow)

	counts := make(map[string]int)
	var total int64
	for _, c := range candidates {
		counts[strings.ToLower(strings.TrimPrefix(filepath.Ext(c), "."))]++
		if info, err := os.Stat(c); err == nil {
			total += info.Size()
		}
	}

	for _, ext := range allow.Extensions() {
		fmt.Fprintf(out, "%-4s %d\n", ext, counts[ext])
	}
	fmt.Fprintf(out, "Total files: %d (%s)\n", len(candidates), humanize.IBytes(uint64(total)))
	return nil
}
