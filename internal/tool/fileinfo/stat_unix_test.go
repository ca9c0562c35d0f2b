//go:build linux || darwin || freebsd

package fileinfo

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestQuery_RegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("ABCDE"), 0o600))
	require.NoError(t, os.Chmod(path, 0o754))

	info, err := Query(path)
	require.NoError(t, err)

	assert.Equal(t, TypeFile, info.Type)
	assert.Equal(t, int64(5), info.Size)
	assert.Equal(t, uint64(1), info.LinkCount)
	assert.Equal(t, "rwxr-xr--", info.Permissions.String())
	assert.False(t, info.IsSpecial)
	assert.NotZero(t, info.ID.File)
	assert.Positive(t, info.BlockSize)
	assert.False(t, info.LastWriteTime.IsZero())
}

func TestQuery_Directory(t *testing.T) {
	dir := t.TempDir()

	info, err := Query(dir)
	require.NoError(t, err)

	assert.Equal(t, TypeDirectory, info.Type)
	assert.False(t, info.IsSpecial)
}

func TestQuery_Symlinks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "target.txt")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(sub, 0o755))

	fileLink := filepath.Join(dir, "file-link")
	dirLink := filepath.Join(dir, "dir-link")
	require.NoError(t, os.Symlink(file, fileLink))
	require.NoError(t, os.Symlink(sub, dirLink))

	t.Run("link to file", func(t *testing.T) {
		info, err := Query(fileLink)
		require.NoError(t, err)
		assert.Equal(t, TypeFileLink, info.Type)
		assert.False(t, info.IsSpecial)

		// Size comes from the link itself, not the target.
		assert.Equal(t, int64(len(file)), info.Size)
	})

	t.Run("link to directory", func(t *testing.T) {
		info, err := Query(dirLink)
		require.NoError(t, err)
		assert.Equal(t, TypeDirectoryLink, info.Type)
		assert.False(t, info.IsSpecial)
	})

	t.Run("dangling link fails", func(t *testing.T) {
		dangling := filepath.Join(dir, "dangling")
		require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), dangling))

		_, err := Query(dangling)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestQuery_HardLinksShareIdentity(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.WriteFile(first, []byte("x"), 0o644))
	require.NoError(t, os.Link(first, second))

	a, err := Query(first)
	require.NoError(t, err)
	b, err := Query(second)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, uint64(2), a.LinkCount)
}

func TestQuery_FifoIsSpecial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe")
	require.NoError(t, unix.Mkfifo(path, 0o644))

	info, err := Query(path)
	require.NoError(t, err)

	assert.Equal(t, TypeFile, info.Type)
	assert.True(t, info.IsSpecial)
}

func TestQuery_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	_, err := Query(path)
	require.Error(t, err)

	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, path, queryErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestQuery_LstatFailureIsNotRetried(t *testing.T) {
	calls := 0
	p := &unixProvider{
		lstat: func(string, *unix.Stat_t) error {
			calls++
			return unix.EACCES
		},
		stat: func(string, *unix.Stat_t) error {
			t.Fatal("stat must not be called when lstat fails")
			return nil
		},
	}

	_, err := p.Query("/locked/file")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, fs.ErrPermission)
}
