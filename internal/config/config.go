package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInterval            = 2
	DefaultLogLevel            = LogLevelWarning
	DefaultProbeTimeout        = 5
	DefaultSettingsDB          = "/var/lib/cpuctl/settings.db"
	DefaultMetricsDB           = "/var/lib/cpuctl/metrics.db"
	DefaultMetricsBatchSize    = 10
	DefaultMetricsBatchTimeout = 30
	DefaultShellBinary         = "sh"
	DefaultSuBinary            = "su"
	DefaultShellQueue          = 16

	defaultEnvPrefix  = "CPUCTL"
	configEnvVariable = "CPUCTL_CONFIG"
	configName        = "cpuctl"
	configType        = "toml"
)

type ShellConfig struct {
	Binary string `mapstructure:"binary"`
	Su     string `mapstructure:"su"`
	Queue  int    `mapstructure:"queue"`
}

type Config struct {
	Interval            int         `mapstructure:"interval"`
	LogLevel            LogLevel    `mapstructure:"log_level"`
	Debug               bool        `mapstructure:"debug"`
	Verbose             bool        `mapstructure:"verbose"`
	ProbeTimeout        int         `mapstructure:"probe_timeout"`
	SettingsDB          string      `mapstructure:"settings_db"`
	Metrics             bool        `mapstructure:"metrics"`
	MetricsDB           string      `mapstructure:"metrics_db"`
	MetricsBatchSize    int         `mapstructure:"metrics_batch_size"`
	MetricsBatchTimeout int         `mapstructure:"metrics_batch_timeout"`
	Shell               ShellConfig `mapstructure:"shell"`

	v *viper.Viper
}

// flag name -> viper key
var flagKeys = map[string]string{
	"interval":      "interval",
	"log-level":     "log_level",
	"debug":         "debug",
	"verbose":       "verbose",
	"probe-timeout": "probe_timeout",
	"settings-db":   "settings_db",
	"metrics":       "metrics",
	"metrics-db":    "metrics_db",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to the configuration file")
	fs.Int("interval", DefaultInterval, "Interval between monitor samples in seconds")
	fs.String("log-level", string(DefaultLogLevel), "Log level (trace, debug, info, warning, error)")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.Int("probe-timeout", DefaultProbeTimeout, "Seconds to wait for a frequency probe")
	fs.String("settings-db", DefaultSettingsDB, "Path to the boot settings database")
	fs.Bool("metrics", false, "Record monitor samples to the metrics database")
	fs.String("metrics-db", DefaultMetricsDB, "Path to the metrics database")
}

// Load reads configuration from defaults, the config file, CPUCTL_*
// environment variables and the flags in fs, in increasing precedence.
// fs may be nil.
func Load(fs *pflag.FlagSet, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := &options{
		envPrefix:   defaultEnvPrefix,
		configPath:  os.Getenv(configEnvVariable),
		searchPaths: defaultSearchPaths(),
	}
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			o.configPath = f.Value.String()
		}
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(configType)
	if o.configPath != "" {
		v.SetConfigFile(o.configPath)
	} else {
		v.SetConfigName(configName)
		for _, path := range o.searchPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	errFactory := errors.New()

	cfg := &Config{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if cfg.Debug {
		cfg.LogLevel = LogLevelDebug
	} else if cfg.Verbose && cfg.LogLevel == DefaultLogLevel {
		cfg.LogLevel = LogLevelInfo
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", string(DefaultLogLevel))
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("probe_timeout", DefaultProbeTimeout)
	v.SetDefault("settings_db", DefaultSettingsDB)
	v.SetDefault("metrics", false)
	v.SetDefault("metrics_db", DefaultMetricsDB)
	v.SetDefault("metrics_batch_size", DefaultMetricsBatchSize)
	v.SetDefault("metrics_batch_timeout", DefaultMetricsBatchTimeout)
	v.SetDefault("shell.binary", DefaultShellBinary)
	v.SetDefault("shell.su", DefaultSuBinary)
	v.SetDefault("shell.queue", DefaultShellQueue)
}

func defaultSearchPaths() []string {
	paths := []string{"/etc"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", configName))
	}
	return paths
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.ProbeTimeout <= 0 {
		return errFactory.WithData(errors.ErrInvalidTimeout, c.ProbeTimeout)
	}
	if !c.LogLevel.IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, string(c.LogLevel))
	}
	if c.SettingsDB == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "settings_db must not be empty")
	}
	if c.Metrics && c.MetricsDB == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "metrics_db must not be empty when metrics are enabled")
	}
	if c.Shell.Binary == "" || c.Shell.Su == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "shell binaries must not be empty")
	}
	if c.Shell.Queue <= 0 {
		c.Shell.Queue = DefaultShellQueue
	}

	return nil
}

// ConfigFile returns the file the configuration was read from, if any.
func (c *Config) ConfigFile() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// Watch implements Watcher using viper's fsnotify based file watch.
// Invalid edits are skipped; the previous configuration stays in effect.
func (c *Config) Watch(ctx context.Context, callback func(*Config)) error {
	errFactory := errors.New()

	if c.ConfigFile() == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "no configuration file to watch")
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		reloaded, err := decode(c.v)
		if err != nil {
			return
		}
		callback(reloaded)
	})
	c.v.WatchConfig()

	return nil
}

func (c *Config) GetInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

func (c *Config) GetLogLevel() LogLevel {
	return c.LogLevel
}

func (c *Config) GetProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeout) * time.Second
}

func (c *Config) GetSettingsDBPath() string {
	return c.SettingsDB
}

func (c *Config) IsMetricsEnabled() bool {
	return c.Metrics
}

func (c *Config) GetMetricsDBPath() string {
	return c.MetricsDB
}

func (c *Config) GetShell() ShellConfig {
	return c.Shell
}
