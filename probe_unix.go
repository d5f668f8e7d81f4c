//go:build unix

package dircat

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// probeAccess reports the current process's effective read/write permission
// using access(2), which honors supplementary groups and ACLs where the mode
// bits alone would not.
func probeAccess(path string, _ fs.FileInfo) (readable, writeable bool) {
	readable = unix.Access(path, unix.R_OK) == nil
	writeable = unix.Access(path, unix.W_OK) == nil
	return readable, writeable
}

// isHidden reports the platform hidden attribute. On Unix that is the
// dotfile convention.
func isHidden(_ string, name string, _ fs.FileInfo) bool {
	return len(name) > 0 && name[0] == '.'
}
