//go:build windows

package dircat

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// probeAccess reports read/write permission on Windows. The permission bits
// Go synthesizes in stat results come from file attributes, not ACLs, so a
// successfully enumerated entry counts as readable and the read-only
// attribute decides writability.
func probeAccess(path string, info fs.FileInfo) (readable, writeable bool) {
	attrs, err := fileAttributes(path)
	if err != nil {
		return true, info.Mode().Perm()&0o200 != 0
	}
	return true, attrs&windows.FILE_ATTRIBUTE_READONLY == 0
}

// isHidden reports the FILE_ATTRIBUTE_HIDDEN attribute.
func isHidden(path string, _ string, _ fs.FileInfo) bool {
	attrs, err := fileAttributes(path)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

func fileAttributes(path string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}
	return windows.GetFileAttributes(p)
}
