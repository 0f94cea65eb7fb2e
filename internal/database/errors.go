package database

import "codeberg.org/mutker/cpuctl/internal/errors"

const (
	ErrInvalidDBPath          = errors.ErrorCode("database_invalid_path")
	ErrOpenFailed             = errors.ErrorCode("database_open_failed")
	ErrSchemaInitFailed       = errors.ErrorCode("database_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("database_schema_validation_failed")
	ErrSchemaMigrationFailed  = errors.ErrorCode("database_schema_migration_failed")
	ErrBackupFailed           = errors.ErrorCode("database_backup_failed")
)
