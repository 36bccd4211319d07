// Package config loads mosstui settings from an optional YAML file and
// MOSSTUI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

// Config is the resolved CLI configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"LOGGING"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY"`
	Driver    DriverConfig    `mapstructure:"DRIVER"`
	Fetch     FetchConfig     `mapstructure:"FETCH"`
}

// LoggingConfig controls the log file. The terminal belongs to the viewport,
// so logs never go to stdout or stderr.
type LoggingConfig struct {
	Level string `mapstructure:"LEVEL" validate:"required,oneof=panic fatal error warn warning info debug trace"`
	File  string `mapstructure:"FILE"`
}

// TelemetryConfig enables OTLP trace export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"ENDPOINT"`
	ServiceName string `mapstructure:"SERVICE_NAME" validate:"required"`
}

// DriverConfig tunes the tui driver.
type DriverConfig struct {
	QueueSize int `mapstructure:"QUEUE_SIZE" validate:"min=1,max=4096"`
}

// FetchConfig drives the fetch demo.
type FetchConfig struct {
	Packages []string      `mapstructure:"PACKAGES" validate:"min=1,dive,required"`
	Workers  int           `mapstructure:"WORKERS" validate:"min=1,max=64"`
	Delay    time.Duration `mapstructure:"DELAY" validate:"min=0"`
}

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultServiceName = "mosstui"
	DefaultQueueSize   = 10
	DefaultWorkers     = 4
	DefaultDelay       = 150 * time.Millisecond
)

// DefaultPackages is the package list the fetch demo uses when none is configured.
var DefaultPackages = []string{
	"glibc", "zlib", "xz", "openssl", "bash", "coreutils",
	"util-linux", "systemd", "python", "perl", "curl", "git",
}

// Load reads path, or mosstui.yaml from the working directory when path is
// empty. A missing default file is not an error. Environment variables such
// as MOSSTUI_LOGGING_LEVEL override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("LOGGING", map[string]interface{}{
		"LEVEL": DefaultLogLevel,
		"FILE":  "",
	})
	v.SetDefault("TELEMETRY", map[string]interface{}{
		"ENDPOINT":     "",
		"SERVICE_NAME": DefaultServiceName,
	})
	v.SetDefault("DRIVER", map[string]interface{}{
		"QUEUE_SIZE": DefaultQueueSize,
	})
	v.SetDefault("FETCH", map[string]interface{}{
		"PACKAGES": DefaultPackages,
		"WORKERS":  DefaultWorkers,
		"DELAY":    DefaultDelay,
	})

	v.SetEnvPrefix("MOSSTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("mosstui")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}
