// Package fileinfo normalizes per-platform file metadata into a single model.
package fileinfo

// Provider queries path metadata. Implementations never follow the queried
// path when classifying it, except to learn whether a link points at a
// directory.
type Provider interface {
	Query(path string) (*FileInfo, error)
}

// NewProvider returns the metadata backend for the platform the binary was
// built for.
func NewProvider() Provider {
	return newPlatformProvider()
}

// Query is a convenience wrapper around the platform provider.
func Query(path string) (*FileInfo, error) {
	return NewProvider().Query(path)
}

// posixPermissions maps owner/group/other mode bits onto Permissions.
func posixPermissions(mode uint32) Permissions {
	bits := [...]struct {
		mode uint32
		perm Permissions
	}{
		{0o400, PermUserRead},
		{0o200, PermUserWrite},
		{0o100, PermUserExec},
		{0o040, PermGroupRead},
		{0o020, PermGroupWrite},
		{0o010, PermGroupExec},
		{0o004, PermOthersRead},
		{0o002, PermOthersWrite},
		{0o001, PermOthersExec},
	}

	var perm Permissions
	for _, b := range bits {
		if mode&b.mode != 0 {
			perm |= b.perm
		}
	}
	return perm
}

// attributePermissions synthesizes the bitmask for platforms that only know
// a read-only flag. Every class gets read and execute; write is granted to
// all classes unless the file is read-only.
func attributePermissions(readOnly bool) Permissions {
	perm := PermUserRead | PermUserExec |
		PermGroupRead | PermGroupExec |
		PermOthersRead | PermOthersExec
	if !readOnly {
		perm |= PermUserWrite | PermGroupWrite | PermOthersWrite
	}
	return perm
}
