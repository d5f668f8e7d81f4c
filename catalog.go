// Package dircat resolves registry-named storage locations to real
// filesystem directories and lists their immediate entries as fixed-shape
// records.
//
// The pipeline is strictly linear: registry lookup (ListByName only), then
// directory validation, then enumeration, then per-entry record mapping.
// Each stage either feeds the next or aborts the call with one of the
// sentinel errors defined in the types package.
package dircat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/harolddawson/dircat/types"
)

// Catalog is the public entry point. It holds no mutable state, so a single
// Catalog is safe for concurrent use from multiple goroutines.
type Catalog struct {
	reg types.Registry
	log *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for internal diagnostics.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

// New creates a Catalog backed by the given registry. The registry may be nil
// when only ListByPath is used.
func New(reg types.Registry, opts ...Option) *Catalog {
	c := &Catalog{reg: reg, log: slog.Default()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ListByName resolves name through the registry and lists the resulting
// directory. The registry is consulted before any filesystem access, so an
// unregistered name fails with types.ErrNameNotFound without touching disk.
func (c *Catalog) ListByName(ctx context.Context, name string) ([]types.Record, error) {
	if c.reg == nil {
		return nil, fmt.Errorf("%w: %s (no registry configured)", types.ErrNameNotFound, name)
	}
	path, err := c.reg.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.ListByPath(ctx, path)
}

// ListByPath lists the immediate entries of path, bypassing the registry.
// The result reflects the filesystem at call time; nothing is cached, so
// repeated calls may legitimately differ when the directory changes.
func (c *Catalog) ListByPath(ctx context.Context, path string) ([]types.Record, error) {
	if err := validateDir(path); err != nil {
		return nil, err
	}
	return c.enumerate(path)
}

// validateDir confirms that path exists and is a directory. The two
// conditions are distinct and reported separately.
func validateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// A path that cannot be stat'ed cannot be shown to exist.
		return fmt.Errorf("%w: %s", types.ErrPathNotFound, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", types.ErrNotDir, path)
	}
	return nil
}

// enumerate lists the immediate children of a validated directory and maps
// each one to a record. No filtering: hidden entries and entries the caller
// cannot access are included, with access reported via the record flags.
func (c *Catalog) enumerate(dir string) ([]types.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Compatibility rule: a directory that turns unreadable or
		// vanishes between validation and enumeration reports as empty,
		// not as an error. Logged so the two cases stay distinguishable.
		if os.IsPermission(err) || os.IsNotExist(err) {
			c.log.Warn("directory unreadable during enumeration, reporting empty listing",
				"dir", dir, "error", err)
			return []types.Record{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", types.ErrEnumerate, dir, err)
	}

	records := make([]types.Record, 0, len(entries))
	for _, de := range entries {
		rec, ok := c.toRecord(dir, de)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// toRecord maps one raw directory entry to its record. The mapping is
// per-entry and order-independent. An entry that vanishes between
// enumeration and stat is skipped.
func (c *Catalog) toRecord(dir string, de os.DirEntry) (types.Record, bool) {
	info, err := de.Info()
	if err != nil {
		c.log.Debug("entry vanished during mapping, skipping",
			"dir", dir, "name", de.Name())
		return types.Record{}, false
	}

	// Lstat semantics: symlinks are not followed, so links, devices,
	// sockets and the like all classify as unknown.
	fileType := types.TypeUnknown
	switch {
	case info.IsDir():
		fileType = types.TypeDir
	case info.Mode().IsRegular():
		fileType = types.TypeFile
	}

	full := filepath.Join(dir, de.Name())
	readable, writeable := probeAccess(full, info)

	return types.Record{
		FileType:  fileType,
		Readable:  types.FlagOf(readable),
		Writeable: types.FlagOf(writeable),
		Hidden:    types.FlagOf(isHidden(full, de.Name(), info)),
		FileSize:  info.Size(),
		Modified:  info.ModTime(),
		Name:      de.Name(),
	}, true
}
