package metrics

import "codeberg.org/mutker/cpuctl/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("metrics_invalid_db_path")

	// Storage Errors
	ErrTransactionFailed = errors.ErrorCode("metrics_transaction_failed")
	ErrStorageInit       = errors.ErrInitMetrics
	ErrStorageClose      = errors.ErrCloseMetrics

	// Collection Errors
	ErrMetricsCollection = errors.ErrCollectMetrics
	ErrInvalidMetrics    = errors.ErrorCode("metrics_invalid_metrics")

	// Operation Errors
	ErrOperationTimeout = errors.ErrTimeout
)
