package reverse

import (
	"github.com/Cyclone1070/revf/internal/tool/directory"
	"github.com/Cyclone1070/revf/internal/tool/fileinfo"
)

// metadataProvider classifies paths before they are touched.
type metadataProvider interface {
	Query(path string) (*fileinfo.FileInfo, error)
}

// fileMover atomically replaces a file with another.
type fileMover interface {
	Move(src, dst string) error
}

// fileReverser reverses a single file in place.
type fileReverser interface {
	ReverseFile(path string) (int64, error)
}

// treeWalker reverses every file below a directory.
type treeWalker interface {
	Walk(root string) (*directory.WalkResult, error)
}
