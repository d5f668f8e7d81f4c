// Package registry provides backing stores for the name-to-path location
// registry consumed by dircat.
//
// The database-backed store supports multiple backends through the [Dialect]
// interface. Built-in dialects are provided for SQLite and PostgreSQL.
//
//	reg, err := registry.Open("sqlite", "locations.db")
//	defer reg.Close()
//	reg.Put(ctx, "DATA_DIR", "/srv/data")
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/harolddawson/dircat/types"
)

var _ types.Registry = (*DB)(nil)

// ErrBadTable indicates an invalid table name was provided.
var ErrBadTable = errors.New("registry: invalid table name")

// Dialect abstracts database-specific SQL syntax.
// Implement this interface to add support for a new database backend.
type Dialect interface {
	SchemaSQL(table string) []string
	Rebind(query string) string
}

// Option configures registry behavior.
type Option func(*config)

type config struct {
	tableName string
}

// Table sets the database table name (default "locations").
func Table(name string) Option { return func(c *config) { c.tableName = name } }

// DB is a database-backed location registry implementing [types.Registry].
// The table is not required to hold unique names; Lookup resolves duplicates
// deterministically by taking the oldest row (first match wins).
type DB struct {
	db      *sql.DB
	dialect Dialect
	table   string
	dsn     string
	ownDB   bool
}

var (
	dialectsMu sync.RWMutex
	dialects   = map[string]Dialect{
		"sqlite":   SQLiteDialect{},
		"sqlite3":  SQLiteDialect{},
		"postgres": PostgresDialect{},
		"pgx":      PostgresDialect{},
	}
	validTable = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Register adds or replaces a [Dialect] for the given driver name.
func Register(driver string, d Dialect) {
	dialectsMu.Lock()
	dialects[driver] = d
	dialectsMu.Unlock()
}

// Open creates a new database-backed registry.
//
// Supported built-in drivers: "sqlite", "sqlite3", "postgres", "pgx".
// The caller must blank-import the appropriate database/sql driver.
func Open(driver, dsn string, opts ...Option) (*DB, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("registry: open: %w", err)
	}
	r, err := newDB(db, d, dsn, true, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// OpenDB creates a registry from an existing [*sql.DB] connection.
// The caller remains responsible for closing db.
func OpenDB(db *sql.DB, driver string, opts ...Option) (*DB, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	return newDB(db, d, "", false, opts...)
}

func lookupDialect(driver string) (Dialect, error) {
	dialectsMu.RLock()
	d, ok := dialects[driver]
	dialectsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q; use Register to add custom dialects", driver)
	}
	return d, nil
}

func newDB(db *sql.DB, dialect Dialect, dsn string, ownDB bool, opts ...Option) (*DB, error) {
	cfg := config{tableName: "locations"}
	for _, o := range opts {
		o(&cfg)
	}
	if !validTable.MatchString(cfg.tableName) {
		return nil, fmt.Errorf("%w: %q", ErrBadTable, cfg.tableName)
	}
	r := &DB{db: db, dialect: dialect, table: cfg.tableName, dsn: dsn, ownDB: ownDB}
	for _, stmt := range dialect.SchemaSQL(cfg.tableName) {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("registry: schema: %w", err)
		}
	}
	return r, nil
}

// Close closes the database connection if it was created by [Open].
func (r *DB) Close() error {
	if r.ownDB {
		return r.db.Close()
	}
	return nil
}

// DB returns the underlying [*sql.DB] for advanced usage.
func (r *DB) DB() *sql.DB { return r.db }

// q expands {t} to the table name and rebinds placeholders for the dialect.
func (r *DB) q(query string) string {
	return r.dialect.Rebind(strings.ReplaceAll(query, "{t}", r.table))
}

// Lookup implements [types.Registry]. Matching is case-sensitive; when the
// table holds several rows for name, the oldest row wins.
func (r *DB) Lookup(ctx context.Context, name string) (string, error) {
	var path string
	err := r.db.QueryRowContext(ctx,
		r.q(`SELECT path FROM {t} WHERE name = ? ORDER BY id LIMIT 1`), name,
	).Scan(&path)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", types.ErrNameNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("registry: lookup %q: %w", name, err)
	}
	return path, nil
}

// Put registers path under name, replacing any existing rows for name.
// This is a provisioning operation; the dircat core never calls it.
func (r *DB) Put(ctx context.Context, name, path string) error {
	res, err := r.db.ExecContext(ctx,
		r.q(`UPDATE {t} SET path = ? WHERE name = ?`), path, name)
	if err != nil {
		return fmt.Errorf("registry: put %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = r.db.ExecContext(ctx,
		r.q(`INSERT INTO {t} (name, path) VALUES (?, ?)`), name, path)
	if err != nil {
		return fmt.Errorf("registry: put %q: %w", name, err)
	}
	return nil
}

// Delete removes all rows registered under name. Deleting an unknown name is
// not an error.
func (r *DB) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, r.q(`DELETE FROM {t} WHERE name = ?`), name)
	if err != nil {
		return fmt.Errorf("registry: delete %q: %w", name, err)
	}
	return nil
}

// Names returns all registered names in lexical order.
func (r *DB) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`SELECT DISTINCT name FROM {t} ORDER BY name`))
	if err != nil {
		return nil, fmt.Errorf("registry: names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("registry: names: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
