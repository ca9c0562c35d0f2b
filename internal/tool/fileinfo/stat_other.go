//go:build !linux && !darwin && !freebsd && !windows

package fileinfo

import (
	"io/fs"
	"os"
)

// portableProvider covers platforms without a dedicated backend. It has no
// access to device/inode identity, link counts or block sizes.
type portableProvider struct{}

func newPlatformProvider() Provider {
	return portableProvider{}
}

func (portableProvider) Query(path string) (*FileInfo, error) {
	st, err := os.Lstat(path)
	if err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}

	info := &FileInfo{
		Size:           st.Size(),
		LinkCount:      1,
		LastAccessTime: st.ModTime(),
		LastWriteTime:  st.ModTime(),
		CreationTime:   st.ModTime(),
		Permissions:    posixPermissions(uint32(st.Mode().Perm())),
	}

	mode := st.Mode()
	switch {
	case mode.IsDir():
		info.Type = TypeDirectory
	case mode&fs.ModeSymlink != 0:
		target, err := os.Stat(path)
		if err != nil {
			return nil, &QueryError{Path: path, Cause: err}
		}
		mode = target.Mode()
		if mode.IsDir() {
			info.Type = TypeDirectoryLink
		} else {
			info.Type = TypeFileLink
		}
	default:
		info.Type = TypeFile
	}

	if !info.Type.IsDir() && !mode.IsRegular() {
		info.IsSpecial = true
	}

	return info, nil
}
