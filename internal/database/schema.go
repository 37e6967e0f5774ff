package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is the portable DDL of the catalog store. List-valued fields are
// stored as JSON text so the same statements run on Postgres and SQLite.
const schema = `
CREATE TABLE IF NOT EXISTS catalog_records (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    author               TEXT NOT NULL DEFAULT '',
    publisher            TEXT NOT NULL DEFAULT '',
    year_raw             TEXT NOT NULL DEFAULT '',
    physical_description TEXT NOT NULL DEFAULT '',
    category             TEXT NOT NULL DEFAULT '',
    description          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS collections (
    id                      TEXT PRIMARY KEY,
    name                    TEXT NOT NULL,
    book_ids                TEXT NOT NULL DEFAULT '[]',
    key_themes              TEXT,
    geographic_focus        TEXT,
    historical_context      TEXT,
    content_characteristics TEXT
);

CREATE TABLE IF NOT EXISTS book_metadata (
    book_id           TEXT PRIMARY KEY,
    key_themes        TEXT NOT NULL DEFAULT '[]',
    geographic_focus  TEXT NOT NULL DEFAULT '[]',
    historical_period TEXT NOT NULL DEFAULT '[]',
    content_type      TEXT NOT NULL DEFAULT ''
);
`

// EnsureSchema creates the catalog tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
