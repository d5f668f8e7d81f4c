package dircat

import "github.com/harolddawson/dircat/types"

// Re-exports so callers embedding the catalog only need this package.
type (
	Record   = types.Record
	FileType = types.FileType
	Flag     = types.Flag
	Registry = types.Registry
)

const (
	TypeDir     = types.TypeDir
	TypeFile    = types.TypeFile
	TypeUnknown = types.TypeUnknown
	Yes         = types.Yes
	No          = types.No
)

var FlagOf = types.FlagOf

var (
	ErrNameNotFound = types.ErrNameNotFound
	ErrPathNotFound = types.ErrPathNotFound
	ErrNotDir       = types.ErrNotDir
	ErrEnumerate    = types.ErrEnumerate
)
