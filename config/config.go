// Package config loads .localeid.yaml and environment configuration.
//
// Settings are resolved in order, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. .localeid.yaml in the project root
//  3. .env in the project root (only for variables not already set)
//  4. LOCALEID_* environment variables
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = ".localeid.yaml"

// EnvFileName is the dotenv file read from the project root.
const EnvFileName = ".env"

// ErrInvalidConfig is returned when a setting has an unusable value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the localeid configuration.
type Config struct {
	// Data is the path to a registry data file replacing the embedded one.
	// Relative paths are resolved against the project root.
	Data string `yaml:"data,omitempty" env:"LOCALEID_DATA"`
	// Languages restricts the registry to these language subtags.
	Languages []string `yaml:"languages,omitempty" env:"LOCALEID_LANGUAGES" envSeparator:","`
	// Unsupported adds tags to the registry's exclusion set.
	Unsupported []string `yaml:"unsupported,omitempty" env:"LOCALEID_UNSUPPORTED" envSeparator:","`
	// Default is the default locale tag. Empty means "detect from LANG".
	Default string `yaml:"default,omitempty" env:"LOCALEID_DEFAULT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" env:"LOCALEID_LOG_LEVEL"`
	// NoColor disables colored log output.
	NoColor bool `yaml:"no_color,omitempty" env:"LOCALEID_NO_COLOR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load resolves the configuration for the project rooted at rootDir.
func Load(rootDir string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(filepath.Join(rootDir, FileName)); err != nil {
		return nil, err
	}

	envPath := filepath.Join(rootDir, EnvFileName)
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", envPath, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.normalize(rootDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize(rootDir string) error {
	if c.Data != "" && !filepath.IsAbs(c.Data) {
		c.Data = filepath.Join(rootDir, c.Data)
	}
	c.Languages = trimAll(c.Languages)
	c.Unsupported = trimAll(c.Unsupported)
	c.Default = strings.TrimSpace(c.Default)

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q (valid: debug, info, warn, error)", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

func trimAll(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
