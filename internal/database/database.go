// Package database holds the sqlite plumbing shared by the settings and
// metrics stores: opening, schema versioning and backup-then-recreate
// migration.
package database

import (
	"database/sql"
	"os"
	"path/filepath"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// File system permissions
	DefaultDirPerm  = 0o755
	DefaultFilePerm = 0o644

	backupSubdir = "backups"
)

// Schema describes the tables owned by one database file.
type Schema struct {
	Name      string
	Version   int
	CreateSQL string
	// Tables are dropped, in order, when the stored version differs.
	Tables []string
	// BackupDir receives a VACUUM INTO copy before a version change.
	// Empty means a "backups" directory next to the database.
	BackupDir string
}

// Open creates the parent directory, opens the sqlite database at path
// and brings its schema to schema.Version.
func Open(path string, schema Schema, log logger.Logger) (*sql.DB, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrOpenFailed, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  path,
			Error: err.Error(),
		})
	}

	// Open database with specific pragmas for better performance and safety
	dsn := path + "?_journal=WAL&_auto_vacuum=2&_busy_timeout=5000&_foreign_keys=1"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrOpenFailed, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errFactory.WithData(ErrOpenFailed, struct {
			Phase string
			Error string
		}{
			Phase: "ping",
			Error: err.Error(),
		})
	}

	if schema.BackupDir == "" {
		schema.BackupDir = filepath.Join(filepath.Dir(path), backupSubdir)
	}

	if err := ValidateAndUpdateSchema(db, schema, log); err != nil {
		db.Close()
		return nil, errFactory.WithData(ErrOpenFailed, struct {
			Phase string
			Error string
		}{
			Phase: "schema_version",
			Error: err.Error(),
		})
	}

	return db, nil
}
