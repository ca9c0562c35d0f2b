package fsutil

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procCopyFileW = windows.NewLazySystemDLL("kernel32.dll").NewProc("CopyFileW")

func installPlatformHooks(r *OSFileSystem) {
	r.rename = moveFileEx
	r.clearReadOnly = clearReadOnly
	r.nativeCopy = copyFile
	r.needsCopyFallback = func(err error) bool {
		return errors.Is(err, windows.ERROR_ACCESS_DENIED) ||
			errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
	}
}

func moveFileEx(src, dst string) error {
	from, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(from, to, windows.MOVEFILE_COPY_ALLOWED|windows.MOVEFILE_REPLACE_EXISTING)
}

func clearReadOnly(name string) (bool, error) {
	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(path)
	if err != nil {
		return false, err
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY == 0 {
		return false, nil
	}
	if err := windows.SetFileAttributes(path, windows.FILE_ATTRIBUTE_NORMAL); err != nil {
		return false, err
	}
	return true, nil
}

// copyFile uses CopyFileW, which carries the source attributes over and
// overwrites an existing destination.
func copyFile(src, dst string) error {
	from, err := windows.UTF16PtrFromString(src)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(dst)
	if err != nil {
		return err
	}
	r1, _, e1 := procCopyFileW.Call(
		uintptr(unsafe.Pointer(from)),
		uintptr(unsafe.Pointer(to)),
		0,
	)
	if r1 == 0 {
		return e1
	}
	return nil
}
