// Package config loads tool configuration from a TOML file.
//
// The file lives at ~/.config/logicmap/config.toml (or
// $XDG_CONFIG_HOME/logicmap/config.toml) and holds the settings that are
// tedious to repeat on every invocation:
//
//	server = "https://abc123.ngrok.io"
//
//	[cache]
//	dir = ""            # default: ~/.cache/logicmap
//	ttl = "24h"
//
//	[serve]
//	listen = ":8080"
//	redis = "localhost:6379"
//	rate = 5.0          # requests per second per client
//	burst = 10
//
// Every value can be overridden by a command-line flag; flags win over the
// file, the file wins over built-in defaults. A missing file is not an
// error and yields pure defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// appName is used for the XDG config and cache directories.
const appName = "logicmap"

// Defaults applied before the file is read.
const (
	DefaultCacheTTL = 24 * time.Hour
	DefaultListen   = ":8080"
	DefaultRate     = 5.0
	DefaultBurst    = 10
)

// Config holds the loaded tool configuration.
type Config struct {
	// Server is the parsing-service base URL.
	Server string `toml:"server"`

	Cache CacheConfig `toml:"cache"`
	Serve ServeConfig `toml:"serve"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Dir string   `toml:"dir"`
	TTL duration `toml:"ttl"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Listen string  `toml:"listen"`
	Redis  string  `toml:"redis"`
	Rate   float64 `toml:"rate"`
	Burst  int     `toml:"burst"`
}

// TTLDuration returns the configured cache TTL as a time.Duration.
func (c CacheConfig) TTLDuration() time.Duration { return time.Duration(c.TTL) }

// duration wraps time.Duration with TOML string decoding ("24h", "90s").
type duration time.Duration

// UnmarshalText implements toml's text unmarshaling for durations.
func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{
		Cache: CacheConfig{TTL: duration(DefaultCacheTTL)},
		Serve: ServeConfig{
			Listen: DefaultListen,
			Rate:   DefaultRate,
			Burst:  DefaultBurst,
		},
	}
}

// Load reads the configuration file at path. An empty path means the
// default location; a missing file yields [Default] without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the XDG-standard config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the cache directory: the configured one if set,
// otherwise the XDG standard location (~/.cache/logicmap/).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
