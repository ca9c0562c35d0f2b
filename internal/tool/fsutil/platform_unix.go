//go:build unix

package fsutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// POSIX has no mutable read-only attribute and no portable bulk copy; only
// rename(2) across filesystems needs the copy fallback.
func installPlatformHooks(r *OSFileSystem) {
	r.needsCopyFallback = func(err error) bool {
		return errors.Is(err, unix.EXDEV)
	}
}
