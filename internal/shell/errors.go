package shell

import "codeberg.org/mutker/cpuctl/internal/errors"

const (
	ErrClosed          = errors.ErrorCode("shell_closed")
	ErrQueueFull       = errors.ErrorCode("shell_queue_full")
	ErrRootUnavailable = errors.ErrorCode("shell_root_unavailable")
	ErrStartFailed     = errors.ErrorCode("shell_start_failed")
	ErrNonZeroExit     = errors.ErrorCode("shell_non_zero_exit")
	ErrTimeout         = errors.ErrorCode("shell_timeout")
	ErrInvalidCommand  = errors.ErrorCode("shell_invalid_command")
)
