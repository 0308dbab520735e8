// Package config loads carousel runtime settings from flags, environment
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/comalice/carousel"
)

const (
	envPrefix  = "CAROUSEL"
	configName = "carousel"
)

// searchDirs lists where an unnamed config file is looked up.
var searchDirs = func() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, configName))
	}
	return dirs
}

// Keys shared by flags, env vars and the config file.
const (
	KeyInterval           = "interval"
	KeyTransitionDuration = "transition-duration"
	KeyAutoAdvance        = "auto-advance"
	KeyDeck               = "deck"
	KeyLogLevel           = "log-level"
	KeyLogFile            = "log-file"
)

// Config holds the settings a carousel binary needs.
type Config struct {
	Interval           time.Duration `mapstructure:"interval"`
	TransitionDuration time.Duration `mapstructure:"transition-duration"`
	AutoAdvance        bool          `mapstructure:"auto-advance"`
	Deck               string        `mapstructure:"deck"`
	LogLevel           string        `mapstructure:"log-level"`
	LogFile            string        `mapstructure:"log-file"`
}

// Options returns the controller options derived from c.
func (c Config) Options() []carousel.Option {
	return []carousel.Option{
		carousel.WithInterval(c.Interval),
		carousel.WithTransitionDuration(c.TransitionDuration),
		carousel.WithAutoAdvance(c.AutoAdvance),
	}
}

// Validate rejects settings the controller cannot run with.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyInterval, c.Interval)
	}
	if c.TransitionDuration < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyTransitionDuration, c.TransitionDuration)
	}
	return nil
}

// Load resolves settings. Precedence, highest first: flags that were set,
// CAROUSEL_* environment variables, the config file, defaults. An explicit
// configPath must exist. With configPath "" a carousel.{yaml,json,toml} is
// looked up in the working directory and the user config directory; finding
// none is not an error.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyInterval, carousel.DefaultInterval)
	v.SetDefault(KeyTransitionDuration, carousel.DefaultTransitionDuration)
	v.SetDefault(KeyAutoAdvance, true)
	v.SetDefault(KeyDeck, "")
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyLogFile, "")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("binding flags: %w", err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName(configName)
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RegisterFlags adds the config flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Duration(KeyInterval, carousel.DefaultInterval, "auto-advance interval")
	fs.Duration(KeyTransitionDuration, carousel.DefaultTransitionDuration, "exit effect duration")
	fs.Bool(KeyAutoAdvance, true, "advance slides automatically")
	fs.String(KeyDeck, "", "deck file (.yaml, .yml or .json); empty uses the built-in sample")
	fs.String(KeyLogLevel, "INFO", "log level: DEBUG, INFO, WARN, ERROR")
	fs.String(KeyLogFile, "", "write JSON logs to this file instead of stderr")
}
