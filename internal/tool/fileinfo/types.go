package fileinfo

import (
	"strings"
	"time"
)

// FileID identifies a file within a volume.
type FileID struct {
	Device uint64
	File   uint64
}

// Type classifies a queried path. Link variants are only produced when the
// queried path itself is a symbolic link (or reparse point on Windows).
type Type int

const (
	TypeFile Type = iota
	TypeFileLink
	TypeDirectory
	TypeDirectoryLink
)

func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeFileLink:
		return "file link"
	case TypeDirectory:
		return "directory"
	case TypeDirectoryLink:
		return "directory link"
	default:
		return "unknown"
	}
}

// IsDir reports whether t is a directory or a link to one.
func (t Type) IsDir() bool {
	return t == TypeDirectory || t == TypeDirectoryLink
}

// IsLink reports whether the queried path was itself a link.
func (t Type) IsLink() bool {
	return t == TypeFileLink || t == TypeDirectoryLink
}

// Permissions is a user/group/other x read/write/execute bitmask.
type Permissions uint32

const (
	PermUserExec    Permissions = 0x001
	PermUserWrite   Permissions = 0x002
	PermUserRead    Permissions = 0x004
	PermGroupExec   Permissions = 0x010
	PermGroupWrite  Permissions = 0x020
	PermGroupRead   Permissions = 0x040
	PermOthersExec  Permissions = 0x080
	PermOthersWrite Permissions = 0x100
	PermOthersRead  Permissions = 0x200
)

// Has reports whether every bit in p is set.
func (perm Permissions) Has(p Permissions) bool {
	return perm&p == p
}

// String renders the bitmask the way ls does, e.g. "rwxr-x---".
func (perm Permissions) String() string {
	classes := [3][3]Permissions{
		{PermUserRead, PermUserWrite, PermUserExec},
		{PermGroupRead, PermGroupWrite, PermGroupExec},
		{PermOthersRead, PermOthersWrite, PermOthersExec},
	}
	var b strings.Builder
	for _, class := range classes {
		for i, bit := range class {
			if perm.Has(bit) {
				b.WriteByte("rwx"[i])
			} else {
				b.WriteByte('-')
			}
		}
	}
	return b.String()
}

// FileInfo is a platform-neutral snapshot of a path's metadata.
// It is built fresh on every query and is never refreshed; it may be stale
// as soon as the underlying file changes.
type FileInfo struct {
	ID             FileID
	Type           Type
	Size           int64
	LinkCount      uint64
	LastAccessTime time.Time
	LastWriteTime  time.Time
	CreationTime   time.Time
	BlockSize      int64
	Permissions    Permissions
	IsSpecial      bool
}
