package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// seedExtensions mixes raw formats in several cases with files compress
// must leave alone.
var seedExtensions = []string{".CR3", ".cr3", ".NEF", ".nef", ".RAW", ".raw", ".jpg", ".xmp", ".txt"}

type seedOptions struct {
	outputPath string
	fileCount  int
	buckets    int
	fileSize   int
}

// NewSeedCmd creates and returns the seed subcommand for the rawpack CLI.
// It generates a tree of fake raw files to try compress on.
func NewSeedCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a tree of fake raw files",
		Long: `Generate files with camera raw extensions (and a few that compress ignores)
spread over bucket directories. Contents are half random, half zero, so the
archives come out smaller than the inputs without being trivial.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&opts.fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&opts.buckets, "buckets", "b", 8, "Number of subdirectories to spread files over")
	cmd.Flags().IntVar(&opts.fileSize, "size", 64*1024, "Size of each generated file in bytes")

	cmd.MarkFlagRequired("output")

	return cmd
}

// bucketFor picks the subdirectory a seeded file goes into.
func bucketFor(name string, buckets int) string {
	if buckets <= 1 {
		return ""
	}
	b := int(colorhash.HashString(name) % 1000)
	if b < 0 {
		b = -b
	}
	return fmt.Sprintf("bucket-%02d", b%buckets)
}

func runSeed(out io.Writer, opts seedOptions) error {
	if opts.fileCount < 0 || opts.fileSize < 0 {
		return fmt.Errorf("count and size must not be negative")
	}
	if err := os.MkdirAll(opts.outputPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	data := make([]byte, opts.fileSize)
	raw := 0
	for i := range opts.fileCount {
		ext := seedExtensions[i%len(seedExtensions)]
		name := uuid.NewString() + ext
		dir := filepath.Join(opts.outputPath, bucketFor(name, opts.buckets))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		for j := 0; j < len(data)/2; j++ {
			data[j] = byte(rand.IntN(256))
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
		if i%len(seedExtensions) < 6 {
			raw++
		}
	}

	fmt.Fprintf(out, "Created %d files (%d raw) in %s\n", opts.fileCount, raw, opts.outputPath)
	return nil
}
