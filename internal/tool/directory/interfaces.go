package directory

import "iter"

// entryEnumerator lazily lists the entries of one directory.
type entryEnumerator interface {
	Entries(dir string) iter.Seq2[DirectoryEntry, error]
}

// fileReverser reverses a single file in place and reports its size.
type fileReverser interface {
	ReverseFile(path string) (int64, error)
}
