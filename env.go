package treelog

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig is the environment surface for bootstrapping a root logger.
// TREELOG_FILE switches output from stderr to a rotating file; the
// remaining TREELOG_FILE_* knobs only apply then.
type EnvConfig struct {
	Level   string `env:"TREELOG_LEVEL" env-default:"warning"`
	Format  string `env:"TREELOG_FORMAT"`
	Colors  bool   `env:"TREELOG_COLORS" env-default:"true"`
	Enabled bool   `env:"TREELOG_ENABLED" env-default:"true"`

	File           string `env:"TREELOG_FILE"`
	FileMaxSizeMB  int    `env:"TREELOG_FILE_MAX_SIZE" env-default:"100"`
	FileMaxBackups int    `env:"TREELOG_FILE_MAX_BACKUPS" env-default:"3"`
	FileMaxAgeDays int    `env:"TREELOG_FILE_MAX_AGE" env-default:"28"`
	FileCompress   bool   `env:"TREELOG_FILE_COMPRESS"`
}

// ReadEnvConfig reads the TREELOG_* variables.
func ReadEnvConfig() (EnvConfig, error) {
	var c EnvConfig
	if err := cleanenv.ReadEnv(&c); err != nil {
		return EnvConfig{}, fmt.Errorf("treelog: read env: %w", err)
	}
	return c, nil
}

// Options converts the config into constructor options. The level is
// converted permissively, so numeric custom thresholds work from the
// environment too.
func (c EnvConfig) Options() ([]Option, error) {
	lvl, err := ToLevel(c.Level, true)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithThreshold(lvl),
		WithEnabled(c.Enabled),
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	if c.File != "" {
		opts = append(opts, WithHandlers(NewRotatingFileHandler(c.File, RotationConfig{
			MaxSizeMB:  c.FileMaxSizeMB,
			MaxBackups: c.FileMaxBackups,
			MaxAgeDays: c.FileMaxAgeDays,
			Compress:   c.FileCompress,
		})))
	} else if !c.Colors {
		h := NewStreamHandler(os.Stderr)
		h.UseColors = false
		opts = append(opts, WithHandlers(h))
	}
	return opts, nil
}

// NewRootFromEnv creates the process-wide root logger configured from the
// environment. Explicit options apply on top and win.
func NewRootFromEnv(opts ...Option) (*Logger, error) {
	c, err := ReadEnvConfig()
	if err != nil {
		return nil, err
	}
	envOpts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return NewRoot(append(envOpts, opts...)...)
}
