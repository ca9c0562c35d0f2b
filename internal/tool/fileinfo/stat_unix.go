//go:build linux || darwin || freebsd

package fileinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

// unixProvider reads metadata with lstat(2), falling back to stat(2) only
// to classify the target of a symbolic link.
type unixProvider struct {
	lstat func(path string, st *unix.Stat_t) error
	stat  func(path string, st *unix.Stat_t) error
}

func newPlatformProvider() Provider {
	return &unixProvider{
		lstat: unix.Lstat,
		stat:  unix.Stat,
	}
}

func (p *unixProvider) Query(path string) (*FileInfo, error) {
	var st unix.Stat_t
	if err := p.lstat(path, &st); err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}

	info := &FileInfo{
		ID:          FileID{Device: uint64(st.Dev), File: uint64(st.Ino)},
		Size:        st.Size,
		LinkCount:   uint64(st.Nlink),
		BlockSize:   int64(st.Blksize),
		Permissions: posixPermissions(uint32(st.Mode)),
	}
	info.LastAccessTime, info.LastWriteTime, info.CreationTime = statTimes(&st)

	format := uint32(st.Mode) & unix.S_IFMT
	switch format {
	case unix.S_IFDIR:
		info.Type = TypeDirectory
	case unix.S_IFLNK:
		var target unix.Stat_t
		if err := p.stat(path, &target); err != nil {
			return nil, &QueryError{Path: path, Cause: err}
		}
		format = uint32(target.Mode) & unix.S_IFMT
		if format == unix.S_IFDIR {
			info.Type = TypeDirectoryLink
		} else {
			info.Type = TypeFileLink
		}
	default:
		info.Type = TypeFile
	}

	// For links, format now describes the target.
	if !info.Type.IsDir() && format != unix.S_IFREG {
		info.IsSpecial = true
	}

	return info, nil
}

func timespecTime(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
