package fileinfo

import (
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGetDiskFreeSpaceW = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetDiskFreeSpaceW")

// windowsProvider opens the path itself (not a reparse point's target) and
// reads its by-handle information. Windows has no group/other distinction,
// so permissions are synthesized from the read-only attribute.
type windowsProvider struct{}

func newPlatformProvider() Provider {
	return windowsProvider{}
}

func (windowsProvider) Query(path string) (*FileInfo, error) {
	blockSize, err := clusterSize(path)
	if err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}

	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}

	handle, err := windows.CreateFile(
		name,
		0,
		windows.FILE_SHARE_DELETE|windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}

	var data windows.ByHandleFileInformation
	err = windows.GetFileInformationByHandle(handle, &data)
	closeErr := windows.CloseHandle(handle)
	if err != nil {
		return nil, &QueryError{Path: path, Cause: err}
	}
	if closeErr != nil {
		return nil, &QueryError{Path: path, Cause: closeErr}
	}

	info := &FileInfo{
		ID: FileID{
			Device: uint64(data.VolumeSerialNumber),
			File:   uint64(data.FileIndexHigh)<<32 | uint64(data.FileIndexLow),
		},
		Size:           int64(uint64(data.FileSizeHigh)<<32 | uint64(data.FileSizeLow)),
		LinkCount:      uint64(data.NumberOfLinks),
		LastAccessTime: filetimeTime(data.LastAccessTime),
		LastWriteTime:  filetimeTime(data.LastWriteTime),
		CreationTime:   filetimeTime(data.CreationTime),
		BlockSize:      blockSize,
		Permissions:    attributePermissions(data.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0),
	}

	isDir := data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0
	if data.FileAttributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		target, err := os.Stat(path)
		if err != nil {
			return nil, &QueryError{Path: path, Cause: err}
		}
		if target.IsDir() {
			info.Type = TypeDirectoryLink
		} else {
			info.Type = TypeFileLink
		}
	} else if isDir {
		info.Type = TypeDirectory
	} else {
		info.Type = TypeFile
	}

	return info, nil
}

// clusterSize returns the allocation unit of the volume holding path.
// Relative paths are resolved against the current drive.
func clusterSize(path string) (int64, error) {
	var root *uint16
	if filepath.IsAbs(path) {
		var err error
		root, err = windows.UTF16PtrFromString(filepath.VolumeName(path) + `\`)
		if err != nil {
			return 0, err
		}
	}

	var sectorsPerCluster, bytesPerSector, freeClusters, totalClusters uint32
	r1, _, e1 := procGetDiskFreeSpaceW.Call(
		uintptr(unsafe.Pointer(root)),
		uintptr(unsafe.Pointer(&sectorsPerCluster)),
		uintptr(unsafe.Pointer(&bytesPerSector)),
		uintptr(unsafe.Pointer(&freeClusters)),
		uintptr(unsafe.Pointer(&totalClusters)),
	)
	if r1 == 0 {
		return 0, e1
	}
	return int64(sectorsPerCluster) * int64(bytesPerSector), nil
}

func filetimeTime(ft windows.Filetime) time.Time {
	return time.Unix(0, ft.Nanoseconds())
}
