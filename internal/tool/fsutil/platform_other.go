//go:build !unix && !windows

package fsutil

// No cross-device detection is available; rename failures are final.
func installPlatformHooks(*OSFileSystem) {}
