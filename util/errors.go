// Package util provides utility functions for rawpack.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Archive errors
	ErrNotArchive = errors.New("file path extension is not '." + ArchiveExt + "'")
)
