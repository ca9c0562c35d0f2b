// Package reverse reverses the byte order of files in place.
package reverse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cyclone1070/revf/internal/tool/pathutil"
)

// DefaultChunkSize is the largest slice of a file held in memory at once.
const DefaultChunkSize = 8192

// maxTempPrefix bounds the basename portion of a temporary file name so the
// generated name stays under common filename limits.
const maxTempPrefix = 128

// sourceFile is the read side of a reversal.
type sourceFile interface {
	io.ReadSeeker
	io.Closer
	Stat() (os.FileInfo, error)
}

// Engine streams a file into a reversed temporary copy and then replaces the
// original with it. The original is never written to directly.
type Engine struct {
	metadata   metadataProvider
	mover      fileMover
	scratchDir string
	chunkSize  int
	logger     *zap.Logger

	// Internal file openers for testability
	openSource func(name string) (sourceFile, error)
	createTemp func(name string, perm os.FileMode) (io.WriteCloser, error)
	tempName   func(path string) string
}

// NewEngine creates an Engine that stages reversed copies in scratchDir.
// A chunkSize below 1 selects DefaultChunkSize.
func NewEngine(
	metadata metadataProvider,
	mover fileMover,
	scratchDir string,
	chunkSize int,
	logger *zap.Logger,
) *Engine {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		metadata:   metadata,
		mover:      mover,
		scratchDir: scratchDir,
		chunkSize:  chunkSize,
		logger:     logger,
		openSource: func(name string) (sourceFile, error) {
			return os.Open(name)
		},
		createTemp: createExclusive,
	}
	e.tempName = e.uniqueTempName
	return e
}

// ReverseFile reverses the bytes of the file at path and returns its size.
// On failure the original is left untouched; a partially written temporary
// file may remain in the scratch directory.
func (e *Engine) ReverseFile(path string) (int64, error) {
	info, err := e.metadata.Query(path)
	if err != nil {
		return 0, err
	}
	if info.Type.IsDir() {
		return 0, &ReversalError{Op: OpOpen, Path: path, Cause: ErrIsDirectory}
	}
	if info.IsSpecial {
		return 0, &ReversalError{Op: OpOpen, Path: path, Cause: ErrSpecialFile}
	}

	temp := e.tempName(path)

	size, err := e.reverseInto(path, temp)
	if err != nil {
		e.logger.Warn("reversal aborted",
			zap.String("path", path),
			zap.String("temporary", temp),
			zap.Error(err))
		return 0, err
	}

	if err := e.mover.Move(temp, path); err != nil {
		e.logger.Warn("replace failed",
			zap.String("path", path),
			zap.String("temporary", temp),
			zap.Error(err))
		return 0, &ReversalError{Op: OpReplace, Path: path, Cause: err}
	}

	e.logger.Debug("reversed file",
		zap.String("path", path),
		zap.Int64("bytes", size),
		zap.Stringer("type", info.Type))

	return size, nil
}

// reverseInto writes the bytes of path into temp in reverse order. The
// source is read from its last chunk towards its first while temp is written
// strictly front to back. Both handles are released on every return path.
func (e *Engine) reverseInto(path, temp string) (size int64, err error) {
	src, err := e.openSource(path)
	if err != nil {
		return 0, &ReversalError{Op: OpOpen, Path: path, Cause: err}
	}
	defer src.Close()

	size, err = src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, &ReversalError{Op: OpSeek, Path: path, Cause: err}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, &ReversalError{Op: OpSeek, Path: path, Cause: err}
	}

	stat, err := src.Stat()
	if err != nil {
		return 0, &ReversalError{Op: OpStat, Path: path, Cause: err}
	}

	dst, err := e.createTemp(temp, stat.Mode().Perm())
	if err != nil {
		return 0, &ReversalError{Op: OpCreate, Path: temp, Cause: err}
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = &ReversalError{Op: OpClose, Path: temp, Cause: closeErr}
		}
	}()

	buf := make([]byte, e.chunkSize)
	remaining := size
	for remaining > 0 {
		n := chunkLength(remaining, e.chunkSize)
		offset := remaining - int64(n)

		if _, err := src.Seek(offset, io.SeekStart); err != nil {
			return 0, &ReversalError{Op: OpSeek, Path: path, Cause: err}
		}

		chunk := buf[:n]
		if _, err := io.ReadFull(src, chunk); err != nil {
			return 0, &ReversalError{Op: OpRead, Path: path, Cause: err}
		}

		ReverseChunk(chunk)

		if _, err := dst.Write(chunk); err != nil {
			return 0, &ReversalError{Op: OpWrite, Path: temp, Cause: err}
		}

		remaining = offset
	}

	return size, nil
}

// chunkLength returns how many bytes the next chunk holds: the chunk size,
// or whatever is left when fewer bytes remain. It never exceeds remaining.
func chunkLength(remaining int64, chunkSize int) int {
	if remaining <= 0 || chunkSize <= 0 {
		return 0
	}
	if remaining < int64(chunkSize) {
		return int(remaining)
	}
	return chunkSize
}

// ReverseChunk reverses b in place.
func ReverseChunk(b []byte) {
	slices.Reverse(b)
}

// uniqueTempName derives a scratch path from the file's basename plus a
// random suffix, so files sharing a basename never collide.
func (e *Engine) uniqueTempName(path string) string {
	name := pathutil.Basename(path)
	if len(name) > maxTempPrefix {
		name = strings.ToValidUTF8(name[:maxTempPrefix], "")
	}
	return filepath.Join(e.scratchDir, fmt.Sprintf("%s.%s.revf", name, uuid.NewString()))
}

// createExclusive creates name, failing if it already exists, and applies
// perm exactly regardless of the process umask.
func createExclusive(name string, perm os.FileMode) (io.WriteCloser, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}
