// Package config loads widgetdeck settings from a YAML file with env overrides.
// Layout: ~/.widgetdeck/config.yaml, state under ~/.widgetdeck/state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnv overrides the config file path.
	ConfigEnv = "WIDGETDECK_CONFIG"
	// DataDirEnv overrides the state directory (for testing).
	DataDirEnv = "WIDGETDECK_DATA_DIR"
	// DefaultBase is the per-user base directory under $HOME.
	DefaultBase = ".widgetdeck"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	User    string  `yaml:"user"`
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
	Tracing Tracing `yaml:"tracing"`
}

// Storage selects and configures the layout key-value backend.
type Storage struct {
	Backend    string `yaml:"backend"`
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path"`
	Redis      Redis  `yaml:"redis"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Log configures the file logger. An empty File disables logging.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Metrics configures the optional Prometheus endpoint.
type Metrics struct {
	Addr string `yaml:"addr"`
}

// Tracing configures OTLP trace export. An empty Endpoint disables it.
type Tracing struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	base := baseDir()
	return Config{
		User: "default",
		Storage: Storage{
			Backend:    BackendFile,
			Dir:        filepath.Join(base, "state"),
			SQLitePath: filepath.Join(base, "widgetdeck.db"),
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "widgetdeck:",
			},
		},
		Log: Log{
			File:  filepath.Join(base, "widgetdeck.log"),
			Level: "info",
		},
		Tracing: Tracing{
			ServiceName: "widgetdeck",
			Insecure:    true,
		},
	}
}

// DefaultPath returns the config path from WIDGETDECK_CONFIG or the per-user default.
func DefaultPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return filepath.Join(baseDir(), "config.yaml")
}

// Load reads path over the defaults and applies env overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		c.Storage.Dir = dir
	}
	if ep := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); ep != "" {
		c.Tracing.Endpoint = ep
	}
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		c.Tracing.ServiceName = name
	}
}

// Validate rejects unknown backends and log levels.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.User == "" {
		return errors.New("user must not be empty")
	}
	return nil
}

// LayoutKey is the key-value key holding the user's dashboard layout.
func (c Config) LayoutKey() string {
	return "layout:" + c.User
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultBase
	}
	return filepath.Join(home, DefaultBase)
}
