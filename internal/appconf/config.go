package appconf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings for the application.
type Config struct {
	Port      int
	Env       Environment
	LogLevel  string
	RateLimit int // requests per second per client, 0 disables limiting
}

// File is the on-disk YAML form of the configuration. Zero values leave the
// corresponding default untouched.
type File struct {
	Port      int    `yaml:"port"`
	Env       string `yaml:"env"`
	LogLevel  string `yaml:"log_level"`
	RateLimit *int   `yaml:"rate_limit"`
	Dataset   struct {
		URL           string        `yaml:"url"`
		FetchTimeout  time.Duration `yaml:"fetch_timeout"`
		FetchAttempts int           `yaml:"fetch_attempts"`
	} `yaml:"dataset"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply overlays the non-zero file settings onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.Port != 0 {
		cfg.Port = f.Port
	}
	if f.Env != "" {
		cfg.Env = EnvFlagToEnvironment(f.Env)
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.RateLimit != nil {
		cfg.RateLimit = *f.RateLimit
	}
}
