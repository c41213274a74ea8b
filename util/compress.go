package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ArchiveExt is appended to a raw file's full name to form its archive name.
const ArchiveExt = "zst"

// ArchiveLevel is the fixed encoder level, zstd's default preset. Archives are
// zstd frames, not xz; it is not user configurable.
const ArchiveLevel = zstd.SpeedDefault

// ArchiveName returns the desired (not yet uniquified) archive path for path:
// "img.CR3" becomes "img.CR3.zst".
func ArchiveName(path string) string {
	return path + "." + ArchiveExt
}

// IsArchive reports whether path carries the archive extension.
func IsArchive(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), "."+ArchiveExt)
}

// NewArchiveWriter returns a single-stream zstd encoder writing to w. Closing
// it flushes the final frame but does not close w.
func NewArchiveWriter(w io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(ArchiveLevel),
		zstd.WithEncoderConcurrency(1),
	)
}

// Decompress streams the archive in r into w.
func Decompress(w io.Writer, r io.Reader) (int64, error) {
	dec, err := zstd.NewReader(bufio.NewReader(r), zstd.WithDecoderConcurrency(1))
	if err != nil {
		return 0, err
	}
	defer dec.Close()
	return io.Copy(w, dec)
}

// DecompressFile restores the archive at path next to itself, dropping the
// archive extension. The output name is uniquified; the archive is kept.
// It returns the path written.
func DecompressFile(path string) (string, error) {
	if !IsArchive(path) {
		return "", ErrNotArchive
	}
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := CreateUnique(path[:len(path)-len(ArchiveExt)-1], 0o644)
	if err != nil {
		return "", err
	}
	dest := out.Name()
	bw := bufio.NewWriter(out)
	if _, err := Decompress(bw, in); err != nil {
		out.Close()
		return dest, fmt.Errorf("decompress %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return dest, err
	}
	return dest, out.Close()
}
