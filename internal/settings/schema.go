package settings

import "codeberg.org/mutker/cpuctl/internal/database"

const (
	SchemaVersion = 1

	createTablesSQL = `
	CREATE TABLE IF NOT EXISTS items (
	    id         INTEGER PRIMARY KEY AUTOINCREMENT,
	    tbl        TEXT NOT NULL,
	    category   TEXT NOT NULL,
	    name       TEXT NOT NULL,
	    file_name  TEXT NOT NULL,
	    value      TEXT NOT NULL,
	    UNIQUE (tbl, category, name)
	);`

	selectItemsSQL = `
    SELECT tbl, category, name, file_name, value
    FROM items
    WHERE tbl = ? AND category = ?
    ORDER BY id`

	upsertItemSQL = `
    INSERT INTO items (tbl, category, name, file_name, value)
    VALUES (?, ?, ?, ?, ?)
    ON CONFLICT (tbl, category, name) DO UPDATE SET
        file_name = excluded.file_name,
        value = excluded.value`

	deleteItemSQL = `
    DELETE FROM items
    WHERE tbl = ? AND category = ? AND name = ?`
)

func schema() database.Schema {
	return database.Schema{
		Name:      "settings",
		Version:   SchemaVersion,
		CreateSQL: createTablesSQL,
		Tables:    []string{"items"},
	}
}
