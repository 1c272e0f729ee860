package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vaultpass/passgen-go/internal/generator"
)

const envPrefix = "passgen"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port           string  `mapstructure:"port"`
	Env            string  `mapstructure:"env"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	DefaultLength  int     `mapstructure:"default_length"`
	LogLevel       string  `mapstructure:"log_level"`
}

func defaults() map[string]any {
	return map[string]any{
		"port":             "8080",
		"env":              "development",
		"rate_limit_rps":   5.0,
		"rate_limit_burst": 10,
		"default_length":   generator.DefaultLength,
		"log_level":        "info",
	}
}

// Load reads configuration from defaults, an optional passgen.yaml, PASSGEN_*
// environment variables and, when flags is non-nil, any flag whose name
// matches a key (dashes map to underscores). Later sources win.
func Load(flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "passgen"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults()[key]; known && bindErr == nil {
				bindErr = v.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return cfg, bindErr
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidConfig)
	}
	if c.Port == "" {
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	}
	if clamped := generator.ClampLength(c.DefaultLength); clamped != c.DefaultLength {
		slog.Warn("default length out of range, clamping", "default_length", c.DefaultLength, "clamped", clamped)
		c.DefaultLength = clamped
	}
	return nil
}

// Level maps LogLevel onto a slog level; unknown values mean info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
