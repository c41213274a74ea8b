package cmd

import (
	"path/filepath"
	"strings"
)

// pathsOverlap reports whether one path equals or contains the other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		abs1, abs2 = filepath.Clean(path1), filepath.Clean(path2)
	}
	return within(abs1, abs2) || within(abs2, abs1)
}

// within reports whether child is parent or lies below it.
func within(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
