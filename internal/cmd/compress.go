package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dendrascience/rawpack/rawpack"
	"github.com/dendrascience/rawpack/util"
)

type compressOptions struct {
	inputPath     string
	originalsPath string
	reportPath    string
	dryRun        bool
}

// NewCompressCmd creates and returns the compress subcommand for the rawpack CLI.
func NewCompressCmd() *cobra.Command {
	var opts compressOptions

	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress raw files and move the originals aside",
		Long: `Walk the input directory, compress every CR3, RAW and NEF file into a
<name>.<ext>.zst archive next to it, then move the original into the
originals directory. Archives are zstd streams (not xz); "rawpack restore"
or "zstd -d" unpacks them.

Files are processed in parallel. A file that fails at any step is logged and
left where it is; the remaining files carry on. The command only exits
non-zero when the input is unusable or the originals directory cannot be
created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, runID, closeLog, err := newRunLogger()
			if err != nil {
				return err
			}
			defer closeLog()
			return runCompress(cmd.OutOrStdout(), log, runID, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Input directory to traverse (required)")
	cmd.Flags().StringVarP(&opts.originalsPath, "originals", "o", "", "Directory to move original files to (required)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Write a JSON summary of the run to this file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be done without making changes")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("originals")

	return cmd
}

func runCompress(out io.Writer, log *slog.Logger, runID string, opts compressOptions) error {
	inputPath, err := filepath.Abs(opts.inputPath)
	if err != nil {
		return err
	}
	originalsPath, err := filepath.Abs(opts.originalsPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %s: %w", inputPath, util.ErrExpectedDirectory)
	}
	if pathsOverlap(inputPath, originalsPath) {
		log.Warn("originals directory overlaps the input tree; moved originals will be picked up by later runs",
			slog.String("input", inputPath), slog.String("originals", originalsPath))
	}

	entries, err := util.Walk(inputPath)
	if err != nil {
		return fmt.Errorf("walk %s: %w", inputPath, err)
	}
	candidates := util.SelectCandidates(entries, util.DefaultAllowList())
	log.Info("found candidates", slog.String("input", inputPath), slog.Int("count", len(candidates)))

	if opts.dryRun {
		fmt.Fprintln(out, "DRY RUN - no changes will be made")
		for _, c := range candidates {
			fmt.Fprintf(out, "  %s -> %s\n", c, util.UniquePath(util.ArchiveName(c)))
		}
		return nil
	}

	started := time.Now().UTC()
	outcomes, err := rawpack.Batch{Reporter: rawpack.NewLogReporter(log)}.Run(candidates, originalsPath)
	if err != nil {
		return err
	}

	summary := rawpack.Summarize(outcomes)
	summary.RunID = runID
	summary.Started = started
	summary.Finished = time.Now().UTC()
	summary.OriginalsDir = originalsPath

	log.Info("run complete",
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("failed", summary.Failed),
		slog.String("read", humanize.IBytes(uint64(summary.InputBytes))),
		slog.String("written", humanize.IBytes(uint64(summary.ArchiveBytes))),
		slog.String("ratio", fmt.Sprintf("%.3f", summary.Ratio())),
		slog.Duration("elapsed", summary.Finished.Sub(summary.Started)),
	)
	if err := summary.Err(); err != nil {
		log.Warn("some files were not archived", slog.Any("error", err))
	}

	if opts.reportPath != "" {
		if err := util.WriteJSONFile(opts.reportPath, summary); err != nil {
			log.Error("failed to write report", slog.String("path", opts.reportPath), slog.Any("error", err))
		}
	}
	return nil
}
