package settings

import "codeberg.org/mutker/cpuctl/internal/errors"

const (
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidItem   = errors.ErrorCode("settings_invalid_item")
	ErrStorageInit   = errors.ErrInitFailed
	ErrStorageAccess = errors.ErrorCode("settings_storage_access_failed")
	ErrStorageClose  = errors.ErrShutdownFailed
)
