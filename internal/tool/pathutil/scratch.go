// Package pathutil provides the small path collaborators the reversal engine
// depends on: locating a scratch directory and extracting a basename.
package pathutil

import (
	"os"
	"runtime"

	"github.com/Cyclone1070/revf/internal/tool/fileinfo"
)

// scratchEnvKeys are consulted in order on POSIX platforms.
var scratchEnvKeys = []string{"TMPDIR", "TEMP", "TMP", "TEMPDIR"}

// ScratchDir resolves the directory reversed copies are staged in.
// An explicit override wins; otherwise POSIX platforms consult TMPDIR, TEMP,
// TMP and TEMPDIR in that order before falling back to /tmp, and Windows
// uses the system temp path. Trailing separators are stripped.
func ScratchDir(override string, lookupEnv func(string) (string, bool)) (string, error) {
	dir := override
	if dir == "" {
		dir = defaultScratchDir(lookupEnv)
	}
	dir = TrimTrailingSeparators(dir)

	info, err := fileinfo.Query(dir)
	if err != nil {
		return "", &ScratchDirError{Path: dir, Cause: err}
	}
	if !info.Type.IsDir() {
		return "", &ScratchDirError{Path: dir, Cause: ErrNotDirectory}
	}

	return dir, nil
}

func defaultScratchDir(lookupEnv func(string) (string, bool)) string {
	if runtime.GOOS == "windows" {
		return os.TempDir()
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	for _, key := range scratchEnvKeys {
		if value, ok := lookupEnv(key); ok && value != "" {
			return value
		}
	}
	return "/tmp"
}

// TrimTrailingSeparators removes trailing path separators, leaving a lone
// root separator intact.
func TrimTrailingSeparators(path string) string {
	for len(path) > 1 && os.IsPathSeparator(path[len(path)-1]) {
		path = path[:len(path)-1]
	}
	return path
}

// Basename returns the final component of path: everything after the last
// separator. A path ending in a separator has an empty basename.
func Basename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if os.IsPathSeparator(path[i]) {
			return path[i+1:]
		}
	}
	return path
}
