package directory

import "io/fs"

// EntryKind classifies a directory entry as reported by the enumerator.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	// KindUnknown covers links, devices and anything else the enumerator
	// could not classify. It is reversed like a file.
	KindUnknown
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// DirectoryEntry represents a single entry in a directory listing
type DirectoryEntry struct {
	Name string
	Kind EntryKind
}

// WalkResult counts what a walk touched.
type WalkResult struct {
	Directories int
	Files       int
	Bytes       int64
}

func kindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindUnknown
	}
}
