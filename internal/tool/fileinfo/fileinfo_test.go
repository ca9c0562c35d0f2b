package fileinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosixPermissions(t *testing.T) {
	tests := []struct {
		name string
		mode uint32
		want Permissions
	}{
		{"none", 0o000, 0},
		{"owner only", 0o700, PermUserRead | PermUserWrite | PermUserExec},
		{"group read", 0o040, PermGroupRead},
		{"others write", 0o002, PermOthersWrite},
		{"typical file", 0o644, PermUserRead | PermUserWrite | PermGroupRead | PermOthersRead},
		{"type bits ignored", 0o100755, PermUserRead | PermUserWrite | PermUserExec | PermGroupRead | PermGroupExec | PermOthersRead | PermOthersExec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, posixPermissions(tt.mode))
		})
	}
}

func TestAttributePermissions(t *testing.T) {
	t.Run("writable", func(t *testing.T) {
		perm := attributePermissions(false)
		assert.Equal(t, "rwxrwxrwx", perm.String())
	})

	t.Run("read-only drops write for every class", func(t *testing.T) {
		perm := attributePermissions(true)
		assert.Equal(t, "r-xr-xr-x", perm.String())
		assert.False(t, perm.Has(PermUserWrite))
		assert.False(t, perm.Has(PermGroupWrite))
		assert.False(t, perm.Has(PermOthersWrite))
	})
}

func TestPermissionsString(t *testing.T) {
	assert.Equal(t, "---------", Permissions(0).String())
	assert.Equal(t, "rw-r-----", posixPermissions(0o640).String())
	assert.Equal(t, "rwxr-x--x", posixPermissions(0o751).String())
}

func TestTypeHelpers(t *testing.T) {
	assert.False(t, TypeFile.IsDir())
	assert.False(t, TypeFileLink.IsDir())
	assert.True(t, TypeDirectory.IsDir())
	assert.True(t, TypeDirectoryLink.IsDir())

	assert.False(t, TypeFile.IsLink())
	assert.True(t, TypeFileLink.IsLink())
	assert.False(t, TypeDirectory.IsLink())
	assert.True(t, TypeDirectoryLink.IsLink())

	assert.Equal(t, "directory link", TypeDirectoryLink.String())
	assert.Equal(t, "unknown", Type(42).String())
}
