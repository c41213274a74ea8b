package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// RawExtensions are the camera raw formats rawpack archives.
var RawExtensions = []string{"cr3", "raw", "nef"}

// AllowList is a read-only set of lower-cased file extensions without the dot.
type AllowList struct {
	exts mapset.Set[string]
}

// NewAllowList builds an AllowList. Leading dots are trimmed and case is folded.
func NewAllowList(exts ...string) AllowList {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			s.Add(e)
		}
	}
	return AllowList{exts: s}
}

// DefaultAllowList returns the AllowList for RawExtensions.
func DefaultAllowList() AllowList {
	return NewAllowList(RawExtensions...)
}

// Contains reports whether ext (with or without the dot) is allowed.
func (a AllowList) Contains(ext string) bool {
	if a.exts == nil {
		return false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return ext != "" && a.exts.Contains(ext)
}

// Extensions returns the allowed extensions in sorted order.
func (a AllowList) Extensions() []string {
	if a.exts == nil {
		return nil
	}
	return mapset.Sorted(a.exts)
}

// Entry is a single item produced by walking a directory tree.
// Known is false when the walker could not determine the entry's type.
type Entry struct {
	Path  string
	Type  fs.FileMode
	Known bool
}

// IsFile reports whether the entry is known to be a regular file.
func (e Entry) IsFile() bool {
	return e.Known && e.Type.IsRegular()
}

// Walk flattens the tree under root into entries, depth-first in lexical
// order. A symlinked root is resolved first, but paths are reported under
// root as given. Symlinks inside the tree are reported as such and never
// followed. Entries the walker fails on below the root are kept with Known
// unset; a root that is missing, not a directory or unreadable is an error.
func Walk(root string) ([]Entry, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}

	var entries []Entry
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if path == resolved {
			return err
		}
		if resolved != root {
			rel, relErr := filepath.Rel(resolved, path)
			if relErr != nil {
				return relErr
			}
			path = filepath.Join(root, rel)
		}
		if err != nil {
			entries = append(entries, Entry{Path: path})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		entries = append(entries, Entry{Path: path, Type: d.Type(), Known: true})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}
	return entries, nil
}

// SelectCandidates keeps the regular files whose extension is on the
// allow-list, preserving input order. Entries without an extension or of
// unknown type are dropped.
func SelectCandidates(entries []Entry, allow AllowList) []string {
	var out []string
	for _, e := range entries {
		if !e.IsFile() {
			continue
		}
		_, ext := splitExt(filepath.Base(e.Path))
		if ext == "" || !allow.Contains(ext) {
			continue
		}
		out = append(out, e.Path)
	}
	return out
}
