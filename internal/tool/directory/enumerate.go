package directory

import (
	"io"
	"iter"
	"os"
)

// defaultBatchSize is how many entries are read from the OS per call.
const defaultBatchSize = 64

// dirReader is the subset of *os.File used for enumeration.
type dirReader interface {
	ReadDir(n int) ([]os.DirEntry, error)
	Close() error
}

// OSEnumerator lists directory entries straight from the OS, a batch at a
// time, so large directories are never loaded whole.
type OSEnumerator struct {
	batchSize int
	open      func(name string) (dirReader, error)
}

// NewOSEnumerator creates an OSEnumerator backed by os.Open.
func NewOSEnumerator() *OSEnumerator {
	return &OSEnumerator{
		batchSize: defaultBatchSize,
		open: func(name string) (dirReader, error) {
			return os.Open(name)
		},
	}
}

// Entries returns a single-use sequence over dir's entries. The directory
// handle is held while the sequence is being ranged over and closed when it
// ends, whether by exhaustion, error, or the consumer stopping early.
func (e *OSEnumerator) Entries(dir string) iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		d, err := e.open(dir)
		if err != nil {
			yield(DirectoryEntry{}, err)
			return
		}
		defer d.Close()

		for {
			batch, err := d.ReadDir(e.batchSize)
			for _, entry := range batch {
				if !yield(DirectoryEntry{Name: entry.Name(), Kind: kindOf(entry.Type())}, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(DirectoryEntry{}, err)
				return
			}
		}
	}
}
