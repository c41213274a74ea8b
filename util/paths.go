package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// UniquePath returns path unchanged if nothing exists there. Otherwise it
// appends -1, -2, ... to the file stem (before the extension) until it finds
// a name that is free.
//
// The check is not atomic with whatever the caller creates afterwards. Use
// CreateUnique or MoveUnique when other writers may derive the same path.
func UniquePath(path string) string {
	if !exists(path) {
		return path
	}
	dir, base := filepath.Split(path)
	stem, ext := splitExt(base)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, stem+"-"+strconv.Itoa(i)+ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

// CreateUnique creates a new file at UniquePath(path) with O_EXCL, moving on
// to the next suffix whenever another writer claimed the name first.
func CreateUnique(path string, perm fs.FileMode) (*os.File, error) {
	for {
		f, err := os.OpenFile(UniquePath(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
}

// MoveUnique renames src to a free name derived from dst and returns it. The
// name is claimed with an empty placeholder first, which the rename then
// replaces, so concurrent moves to the same dst never overwrite each other.
func MoveUnique(src, dst string) (string, error) {
	f, err := CreateUnique(dst, 0o600)
	if err != nil {
		return "", err
	}
	target := f.Name()
	f.Close()
	if err := os.Rename(src, target); err != nil {
		os.Remove(target)
		return "", err
	}
	return target, nil
}

// exists treats any Lstat failure as "free"; an unreadable parent would
// otherwise loop forever. The later create or rename reports the real error.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// splitExt splits a base name into stem and extension (with the dot).
// A name made only of a leading dot and text, like ".hidden", has no extension.
func splitExt(base string) (stem, ext string) {
	ext = filepath.Ext(base)
	if ext == base || strings.TrimSuffix(base, ext) == "" {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}
