package settings

import "codeberg.org/mutker/cpuctl/internal/errors"

const defaultDBPath = "/var/lib/cpuctl/settings.db"

type Config struct {
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.DBPath == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "settings database path is empty")
	}
	return nil
}
