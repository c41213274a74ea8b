// Package rawpack implements the compress-and-relocate pipeline for camera
// raw files.
//
// Each candidate file is streamed into a zstd archive next to it, and only
// after the archive is finalized is the original renamed into a holding
// directory. Candidates are processed by a pool of goroutines; a failure on
// one file is recorded as its Outcome and never stops the others.
//
// The pipeline never logs on its own. Progress is delivered to a Reporter,
// which the CLI backs with a slog logger and tests back with a recorder.
//
// The main entry points are Process, for a single file, and Batch.Run for a
// whole candidate list.
package rawpack
