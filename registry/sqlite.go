package registry

import "fmt"

// SQLiteDialect implements [Dialect] for SQLite databases.
//
// Compatible drivers: modernc.org/sqlite ("sqlite"), github.com/mattn/go-sqlite3 ("sqlite3").
type SQLiteDialect struct{}

func (SQLiteDialect) SchemaSQL(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			path TEXT NOT NULL
		)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_name ON %s(name)`, table, table),
	}
}

func (SQLiteDialect) Rebind(query string) string { return query }
