// Package cmd provides the command-line interface implementation for rawpack.
//
// It uses the Cobra library for command structure and Fang for styling.
// Each command lives in its own file with a constructor returning a
// *cobra.Command:
//   - compress: archive raw files and move the originals aside
//   - restore: decompress archives back next to themselves
//   - count: count raw files in a directory tree
//   - seed: generate a tree of fake raw files for trying things out
//
// Commands load ambient settings through internal/config and log through
// internal/logging; the pipeline itself lives in package rawpack.
package cmd
