package directory

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Walker reverses every file below a directory, depth-first and pre-order.
type Walker struct {
	enumerator entryEnumerator
	reverser   fileReverser
	logger     *zap.Logger
}

// NewWalker creates a new Walker with injected dependencies.
func NewWalker(enumerator entryEnumerator, reverser fileReverser, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		enumerator: enumerator,
		reverser:   reverser,
		logger:     logger,
	}
}

// Walk reverses all files below root, recursing into subdirectories.
// The first error from enumeration, recursion or reversal aborts the whole
// walk; the partial counts gathered so far are returned alongside it.
func (w *Walker) Walk(root string) (*WalkResult, error) {
	result := &WalkResult{}
	if err := w.walk(root, result); err != nil {
		return result, err
	}
	return result, nil
}

func (w *Walker) walk(dir string, result *WalkResult) error {
	result.Directories++
	w.logger.Debug("entering directory", zap.String("path", dir))

	for entry, err := range w.enumerator.Entries(dir) {
		if err != nil {
			return &EnumerateError{Path: dir, Cause: err}
		}

		// Self and parent pseudo-entries
		if entry.Name == "." || entry.Name == ".." {
			continue
		}

		path := filepath.Join(dir, entry.Name)

		if entry.Kind == KindDirectory {
			if err := w.walk(path, result); err != nil {
				return err
			}
			continue
		}

		n, err := w.reverser.ReverseFile(path)
		if err != nil {
			return err
		}
		result.Files++
		result.Bytes += n
	}

	return nil
}
