package config

import (
	"context"
	"time"
)

// Provider defines the interface for accessing configuration values.
// All configuration values are immutable after initial loading; a
// reloaded configuration is delivered as a new Provider through Watch.
type Provider interface {
	// GetInterval returns the monitor sampling interval
	GetInterval() time.Duration

	// GetLogLevel returns the configured logging level
	GetLogLevel() LogLevel

	// GetProbeTimeout returns how long to wait for a frequency probe result
	GetProbeTimeout() time.Duration

	// GetSettingsDBPath returns the path to the boot settings database
	GetSettingsDBPath() string

	// IsMetricsEnabled returns whether metrics collection is enabled
	IsMetricsEnabled() bool

	// GetMetricsDBPath returns the path to the metrics database
	GetMetricsDBPath() string

	// GetShell returns the privileged shell settings
	GetShell() ShellConfig
}

// Watcher enables live configuration updates
type Watcher interface {
	// Watch starts watching the loaded configuration file. The callback
	// is called with the reloaded configuration after every valid change
	// until ctx is done.
	Watch(ctx context.Context, callback func(*Config)) error
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath  string
	envPrefix   string
	searchPaths []string
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "CPUCTL"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithSearchPaths replaces the directories searched for cpuctl.toml
func WithSearchPaths(paths ...string) Option {
	return func(o *options) error {
		o.searchPaths = paths
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelTrace   LogLevel = "trace"
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
