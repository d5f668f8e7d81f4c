package types

import "errors"

var (
	ErrNameNotFound = errors.New("dircat: name not registered")
	ErrPathNotFound = errors.New("dircat: path does not exist")
	ErrNotDir       = errors.New("dircat: not a directory")
	ErrEnumerate    = errors.New("dircat: enumeration failed")
)
