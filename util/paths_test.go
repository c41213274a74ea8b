package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestUniquePath_Missing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"photo.raw.zst", "noext", ".hidden", "a.b.c"} {
		p := filepath.Join(dir, name)
		assert.Equal(t, p, UniquePath(p), name)
	}
}

func TestUniquePath_Suffix(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name:     "archive name",
			existing: []string{"photo.raw.zst"},
			want:     "photo.raw-1.zst",
		},
		{
			name:     "skips taken suffixes",
			existing: []string{"img.CR3", "img-1.CR3", "img-2.CR3"},
			want:     "img-3.CR3",
		},
		{
			name:     "no extension",
			existing: []string{"README"},
			want:     "README-1",
		},
		{
			name:     "dotfile",
			existing: []string{".hidden"},
			want:     ".hidden-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, e := range tt.existing {
				touch(t, filepath.Join(dir, e))
			}
			got := UniquePath(filepath.Join(dir, tt.existing[0]))
			assert.Equal(t, filepath.Join(dir, tt.want), got)
			_, err := os.Lstat(got)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestUniquePath_ClaimSequence(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "x.nef")
	touch(t, base)

	seen := map[string]bool{base: true}
	for range 5 {
		p := UniquePath(base)
		require.False(t, seen[p], "returned %s twice", p)
		seen[p] = true
		touch(t, p)
	}
	assert.Len(t, seen, 6)
}

func TestUniquePath_DanglingSymlinkCountsAsTaken(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "a.raw")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))
	assert.Equal(t, filepath.Join(dir, "a-1.raw"), UniquePath(link))
}

func TestCreateUnique(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "img.raw")
	touch(t, base)

	f, err := CreateUnique(base, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, filepath.Join(dir, "img-1.raw"), f.Name())

	_, err = CreateUnique(filepath.Join(dir, "missing", "img.raw"), 0o644)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMoveUnique_Concurrent(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out", "IMG_0001.CR3")
	require.NoError(t, os.Mkdir(filepath.Dir(dst), 0o755))

	const n = 16
	srcs := make([]string, n)
	for i := range n {
		srcs[i] = filepath.Join(dir, fmt.Sprintf("day%d", i), "IMG_0001.CR3")
		require.NoError(t, os.MkdirAll(filepath.Dir(srcs[i]), 0o755))
		require.NoError(t, os.WriteFile(srcs[i], []byte(srcs[i]), 0o644))
	}

	targets := make([]string, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			targets[i], errs[i] = MoveUnique(srcs[i], dst)
		}()
	}
	wg.Wait()

	contents := map[string]bool{}
	for i := range n {
		require.NoError(t, errs[i])
		assert.NoFileExists(t, srcs[i])
		data, err := os.ReadFile(targets[i])
		require.NoError(t, err)
		contents[string(data)] = true
	}
	assert.Len(t, contents, n)
	names, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, names, n)
}

func TestMoveUnique_Failure(t *testing.T) {
	dir := t.TempDir()
	_, err := MoveUnique(filepath.Join(dir, "gone.nef"), filepath.Join(dir, "gone.nef.moved"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NoFileExists(t, filepath.Join(dir, "gone.nef.moved"))
}
