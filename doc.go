// Package main provides the rawpack command-line interface.
//
// rawpack compresses camera raw files (CR3, RAW, NEF) found under an input
// directory into zstd archives placed next to them, and moves each original
// into a holding directory once its archive has been written.
//
// The binary supports multiple subcommands:
//   - compress: archive raw files and move the originals aside
//   - restore: decompress archives back next to themselves
//   - count: count raw files in a directory tree
//   - seed: generate a tree of fake raw files
package main
