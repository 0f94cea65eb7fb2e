package cpu

import "codeberg.org/mutker/cpuctl/internal/errors"

const (
	ErrShellUnavailable = errors.ErrorCode("cpu_shell_unavailable")
	ErrShellClosed      = errors.ErrorCode("cpu_shell_closed")
	ErrProbeDispatch    = errors.ErrorCode("cpu_probe_dispatch_failed")
	ErrProbeTimeout     = errors.ErrorCode("cpu_probe_timeout")
	ErrSettingsLoad     = errors.ErrorCode("cpu_settings_load_failed")
)
