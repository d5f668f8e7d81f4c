// Package types defines the record shape and collaborator interfaces for
// dircat. This package is intentionally kept minimal with no external
// dependencies.
package types

import (
	"fmt"
	"time"
)

// FileType classifies a directory entry.
type FileType string

const (
	TypeDir     FileType = "D" // directory
	TypeFile    FileType = "F" // regular file
	TypeUnknown FileType = "U" // anything else: symlink, device, socket, ...
)

// Flag is a boolean encoded as "Y" or "N", matching the record layout
// existing callers consume.
type Flag string

const (
	Yes Flag = "Y"
	No  Flag = "N"
)

// FlagOf converts a bool to its Y/N encoding.
func FlagOf(b bool) Flag {
	if b {
		return Yes
	}
	return No
}

// Bool reports whether the flag is Yes.
func (f Flag) Bool() bool { return f == Yes }

// Record describes one immediate child of a listed directory at the moment it
// was enumerated. It is a value object, never a live handle: it is not
// updated when the underlying entry changes.
//
// The field order is part of the external contract and must not change.
type Record struct {
	FileType  FileType  `json:"file_type"`
	Readable  Flag      `json:"readable"`
	Writeable Flag      `json:"writeable"`
	Hidden    Flag      `json:"hidden"`
	FileSize  int64     `json:"file_size"`
	Modified  time.Time `json:"modified"`
	Name      string    `json:"name"`
}

// String returns a formatted ls-style line for this record.
func (r Record) String() string {
	flags := [3]byte{'-', '-', '-'}
	if r.Readable == Yes {
		flags[0] = 'r'
	}
	if r.Writeable == Yes {
		flags[1] = 'w'
	}
	if r.Hidden == Yes {
		flags[2] = 'h'
	}
	typeFlag := "-"
	name := r.Name
	switch r.FileType {
	case TypeDir:
		typeFlag = "d"
		name += "/"
	case TypeUnknown:
		typeFlag = "?"
	}
	return fmt.Sprintf("%s%s %10d %s  %s", typeFlag, flags[:], r.FileSize,
		r.Modified.Format("2006-01-02 15:04"), name)
}
