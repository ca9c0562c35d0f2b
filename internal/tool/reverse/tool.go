package reverse

import (
	"context"

	"go.uber.org/zap"
)

// ReversePathTool reverses a path given on the command line: a file directly,
// or every file below a directory when recursion is authorized.
type ReversePathTool struct {
	metadata metadataProvider
	reverser fileReverser
	walker   treeWalker
	logger   *zap.Logger
}

// NewReversePathTool creates a new ReversePathTool with injected dependencies.
func NewReversePathTool(
	metadata metadataProvider,
	reverser fileReverser,
	walker treeWalker,
	logger *zap.Logger,
) *ReversePathTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReversePathTool{
		metadata: metadata,
		reverser: reverser,
		walker:   walker,
		logger:   logger,
	}
}

// Run classifies req.Path and reverses it. Directories and links to
// directories are rejected unless req.Recursive is set.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReversePathTool) Run(ctx context.Context, req *ReversePathRequest) (*ReversePathResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	info, err := t.metadata.Query(req.Path)
	if err != nil {
		return nil, err
	}

	resp := &ReversePathResponse{
		Path: req.Path,
		Type: info.Type,
	}

	if info.Type.IsDir() {
		if !req.Recursive {
			return nil, &RecursionRequiredError{Path: req.Path}
		}

		result, err := t.walker.Walk(req.Path)
		if err != nil {
			return nil, err
		}

		resp.FilesReversed = result.Files
		resp.DirectoriesVisited = result.Directories
		resp.BytesReversed = result.Bytes
		t.logger.Info("reversed directory",
			zap.String("path", req.Path),
			zap.Int("files", result.Files),
			zap.Int("directories", result.Directories),
			zap.Int64("bytes", result.Bytes))
		return resp, nil
	}

	n, err := t.reverser.ReverseFile(req.Path)
	if err != nil {
		return nil, err
	}

	resp.FilesReversed = 1
	resp.BytesReversed = n
	t.logger.Info("reversed file",
		zap.String("path", req.Path),
		zap.Int64("bytes", n))
	return resp, nil
}
