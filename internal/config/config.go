// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package config

import (
	"errors"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sigil-dev/kvstore/internal/store/snapshot"
	kverr "github.com/sigil-dev/kvstore/pkg/errors"
)

// DefaultPort is the port the service listens on when nothing else is set.
const DefaultPort = 50051

// SnapshotFileName is the snapshot file name used when no path is configured.
const SnapshotFileName = "kvstore.snapshot"

// Config is the top-level kvstore configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// ServerConfig controls the gRPC listener and its shutdown.
type ServerConfig struct {
	Host        string          `mapstructure:"host" yaml:"host"`
	Port        int             `mapstructure:"port" yaml:"port"`
	GracePeriod time.Duration   `mapstructure:"grace_period" yaml:"grace_period"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Reflection  bool            `mapstructure:"reflection" yaml:"reflection"`
}

// RateLimitConfig bounds the request rate of each client address. Zero RPS
// disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" yaml:"rps"`
	Burst int     `mapstructure:"burst" yaml:"burst"`
}

// StorageConfig locates the snapshot file and picks its compression.
type StorageConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path" yaml:"snapshot_path"`
	Compression  string `mapstructure:"compression" yaml:"compression"`
}

// LogConfig controls the default slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "::")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.grace_period", time.Second)
	v.SetDefault("server.rate_limit.rps", 0)
	v.SetDefault("server.rate_limit.burst", 0)
	v.SetDefault("server.reflection", true)
	v.SetDefault("storage.snapshot_path", DefaultSnapshotPath())
	v.SetDefault("storage.compression", "zstd")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// SetupEnv enables KVSTORE_ environment overrides on v. The port is also
// read from KVSTORE_PORT.
func SetupEnv(v *viper.Viper) {
	v.SetEnvPrefix("KVSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "KVSTORE_SERVER_PORT", "KVSTORE_PORT")
}

// DefaultSnapshotPath returns kvstore.snapshot beside the running binary,
// or in the working directory if the binary location is unknown.
func DefaultSnapshotPath() string {
	exe, err := os.Executable()
	if err != nil {
		slog.Debug("resolving executable path", "error", err)
		return SnapshotFileName
	}
	return filepath.Join(filepath.Dir(exe), SnapshotFileName)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, kverr.Errorf(kverr.CodeConfigParseInvalidFormat, "unmarshalling config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, kverr.Errorf(kverr.CodeConfigValidateInvalidValue, "validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}

// Load reads configuration from the given path (or defaults) with
// environment variable overrides (prefix KVSTORE_).
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	SetupEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, kverr.Errorf(kverr.CodeConfigLoadReadFailure, "reading config %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// YAML renders the effective configuration in the config file format.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, kverr.Errorf(kverr.CodeConfigParseInvalidFormat, "rendering config: %w", err)
	}
	return out, nil
}

// ListenAddr returns the host:port the gRPC server binds to.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// SnapshotCompression resolves storage.compression.
func (c *Config) SnapshotCompression() (snapshot.Compression, error) {
	return snapshot.ParseCompression(c.Storage.Compression)
}

// SlogLevel maps log.level to a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Validate checks the configuration for logical errors.
// It returns a slice of all validation errors found, collecting all issues
// rather than stopping at the first one.
func (c *Config) Validate() []error {
	var errs []error

	errs = append(errs, c.validateServer()...)
	errs = append(errs, c.validateStorage()...)
	errs = append(errs, c.validateLog()...)

	return errs
}

func (c *Config) validateServer() []error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: server.port must be between 1 and 65535, got %d",
			c.Server.Port,
		))
	}

	if c.Server.Host != "" && net.ParseIP(c.Server.Host) == nil && strings.ContainsAny(c.Server.Host, ":/ ") {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: server.host must be an IP address or hostname, got %q",
			c.Server.Host,
		))
	}

	if c.Server.GracePeriod < 0 {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: server.grace_period must not be negative, got %s",
			c.Server.GracePeriod,
		))
	}

	if c.Server.RateLimit.RPS < 0 {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: server.rate_limit.rps must not be negative, got %g",
			c.Server.RateLimit.RPS,
		))
	} else if c.Server.RateLimit.RPS > 0 && c.Server.RateLimit.Burst <= 0 {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: server.rate_limit.burst must be positive when rps is set, got %d",
			c.Server.RateLimit.Burst,
		))
	}

	return errs
}

func (c *Config) validateStorage() []error {
	var errs []error

	if strings.TrimSpace(c.Storage.SnapshotPath) == "" {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue, "config: storage.snapshot_path must not be empty"))
	}

	if _, err := c.SnapshotCompression(); err != nil {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: storage.compression: %w", err,
		))
	}

	return errs
}

func (c *Config) validateLog() []error {
	var errs []error

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: log.level must be one of [debug, info, warn, error], got %q",
			c.Log.Level,
		))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, kverr.Errorf(kverr.CodeConfigValidateInvalidValue,
			"config: log.format must be one of [text, json], got %q",
			c.Log.Format,
		))
	}

	return errs
}
