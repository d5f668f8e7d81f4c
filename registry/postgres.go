package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// PostgresDialect implements [Dialect] for PostgreSQL databases.
//
// Compatible drivers: github.com/jackc/pgx/v5/stdlib ("pgx"), github.com/lib/pq ("postgres").
type PostgresDialect struct{}

func (PostgresDialect) SchemaSQL(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id   BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			path TEXT NOT NULL
		)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_name ON %s(name)`, table, table),
	}
}

// Rebind converts ? placeholders to PostgreSQL's $1, $2, ... style.
func (PostgresDialect) Rebind(query string) string {
	var buf strings.Builder
	buf.Grow(len(query) + 16)
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			buf.WriteByte('$')
			buf.WriteString(strconv.Itoa(n))
			n++
		} else {
			buf.WriteByte(query[i])
		}
	}
	return buf.String()
}
