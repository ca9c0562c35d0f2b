package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// CopyChunkSize is the buffer length used by the generic copy loop.
const CopyChunkSize = 8192

var errNegativeRead = errors.New("read returned a negative byte count")

// writeSyncCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeSyncCloser interface {
	io.Writer
	Sync() error
	Close() error
}

// OSFileSystem implements remove, copy and move on top of the local OS.
// OS primitives live in function fields so tests can inject failures such as
// cross-device renames or denied deletions.
type OSFileSystem struct {
	remove    func(name string) error
	rename    func(oldpath, newpath string) error
	lstat     func(name string) (os.FileInfo, error)
	readlink  func(name string) (string, error)
	symlink   func(oldname, newname string) error
	openRead  func(name string) (io.ReadCloser, error)
	openWrite func(name string) (writeSyncCloser, error)

	// Platform hooks. A nil hook means the platform has no such facility.

	// clearReadOnly clears a read-only attribute and reports whether one was
	// set.
	clearReadOnly func(name string) (bool, error)
	// nativeCopy copies contents and attributes in one call.
	nativeCopy func(src, dst string) error
	// needsCopyFallback reports whether a rename failure should be retried as
	// copy followed by remove.
	needsCopyFallback func(err error) bool
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	r := &OSFileSystem{
		remove:   os.Remove,
		rename:   os.Rename,
		lstat:    os.Lstat,
		readlink: os.Readlink,
		symlink:  os.Symlink,
		openRead: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
		openWrite: func(name string) (writeSyncCloser, error) {
			return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
		},
	}
	installPlatformHooks(r)
	return r
}

// Remove deletes path. A path that does not exist is not an error.
// Where the platform has a read-only attribute, a denied deletion clears it
// and retries exactly once.
func (r *OSFileSystem) Remove(path string) error {
	err := r.remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if r.clearReadOnly != nil && errors.Is(err, fs.ErrPermission) {
		cleared, clearErr := r.clearReadOnly(path)
		if clearErr == nil && cleared {
			if err = r.remove(path); err == nil {
				return nil
			}
		}
	}

	return &RemoveError{Path: path, Cause: err}
}

// Copy writes the contents of src into dst, overwriting dst if it exists.
// Platforms with a native copy preserve src's attributes; elsewhere dst keeps
// its own attributes and only the bytes are transferred.
func (r *OSFileSystem) Copy(src, dst string) error {
	if r.nativeCopy != nil {
		if err := r.nativeCopy(src, dst); err != nil {
			return &CopyError{Source: src, Destination: dst, Cause: err}
		}
		return nil
	}

	if err := r.copyChunked(src, dst); err != nil {
		return &CopyError{Source: src, Destination: dst, Cause: err}
	}
	return nil
}

// copyChunked streams src into dst CopyChunkSize bytes at a time. Both
// handles are closed on every return path.
func (r *OSFileSystem) copyChunked(src, dst string) (err error) {
	in, err := r.openRead(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	out, err := r.openWrite(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	buf := make([]byte, CopyChunkSize)
	for {
		n, readErr := in.Read(buf)
		if n < 0 {
			return errNegativeRead
		}
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if n == 0 {
			break
		}
		if _, err := out.Write(buf[:n]); err != nil {
			return err
		}
	}

	return out.Sync()
}

// Move renames src to dst, replacing dst. When the platform refuses the
// rename across a device boundary (or denies it, on Windows) the move falls
// back to Copy followed by Remove.
//
// A failed Move does not imply dst is untouched: if the copy succeeded but
// src could not be removed, the returned MoveError has DestinationWritten
// set and both paths hold the content.
func (r *OSFileSystem) Move(src, dst string) error {
	err := r.rename(src, dst)
	if err == nil {
		return nil
	}
	if r.needsCopyFallback == nil || !r.needsCopyFallback(err) {
		return &MoveError{Source: src, Destination: dst, Cause: err}
	}

	if err := r.transfer(src, dst); err != nil {
		return &MoveError{Source: src, Destination: dst, Cause: err}
	}

	if err := r.Remove(src); err != nil {
		return &MoveError{Source: src, Destination: dst, Cause: err, DestinationWritten: true}
	}

	return nil
}

// transfer copies src to dst for the move fallback. Symbolic links are
// recreated as links rather than dereferenced.
func (r *OSFileSystem) transfer(src, dst string) error {
	info, err := r.lstat(src)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return r.Copy(src, dst)
	}

	target, err := r.readlink(src)
	if err != nil {
		return err
	}
	if err := r.Remove(dst); err != nil {
		return err
	}
	return r.symlink(target, dst)
}
