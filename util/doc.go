// Package util provides the leaf building blocks rawpack's pipeline is made of.
//
// Key Components:
//
// Selection:
//   - Walk flattens a directory tree into Entry values, depth-first
//   - AllowList is a case-insensitive set of raw-image extensions
//   - SelectCandidates filters entries down to regular files on the allow-list
//
// Naming:
//   - UniquePath resolves a desired path to one that does not exist yet by
//     appending -1, -2, ... to the stem
//
// Archives:
//   - NewArchiveWriter wraps a writer in a zstd encoder at a fixed level
//   - DecompressFile restores an archive next to itself
//
// Persistence:
//   - WriteJSONFile writes any value as JSON, used for run reports
package util
