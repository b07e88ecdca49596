// Package config resolves where resumeform keeps its data and how it behaves.
// Precedence: defaults < JSON config file < environment (.env included).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	EnvDir             = "RESUMEFORM_DIR"
	EnvLogLevel        = "RESUMEFORM_LOG_LEVEL"
	EnvPrintPath       = "RESUMEFORM_PRINT_PATH"
	EnvScrollThreshold = "RESUMEFORM_SCROLL_THRESHOLD"
	EnvTheme           = "RESUMEFORM_THEME"

	defaultDirName  = ".resumeform"
	logFileName     = "resumeform.log"
	printFileName   = "resume.txt"
	defaultLogLevel = "info"
	// The TUI scrolls by lines; two lines ahead of a heading plays the role
	// a 100px lead does on a web page.
	defaultScrollThreshold = 2
)

type Config struct {
	DataDir         string `json:"data_dir,omitempty" validate:"required"`
	PrintPath       string `json:"print_path,omitempty" validate:"required"`
	LogLevel        string `json:"log_level,omitempty" validate:"oneof=debug info warn error"`
	ScrollThreshold int    `json:"scroll_threshold,omitempty" validate:"gte=0,lte=1000"`
	Theme           string `json:"theme,omitempty" validate:"oneof=classic neon mono"`
}

// Defaults returns the built-in configuration rooted at ~/.resumeform.
func Defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("home: %w", err)
	}
	dir := filepath.Join(home, defaultDirName)
	return Config{
		DataDir:         dir,
		PrintPath:       filepath.Join(dir, printFileName),
		LogLevel:        defaultLogLevel,
		ScrollThreshold: defaultScrollThreshold,
		Theme:           "classic",
	}, nil
}

// LoadFile reads a JSON config file. All fields are optional.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// Load merges defaults, the optional file at path and the environment, then
// validates the result.
func Load(path string) (*Config, error) {
	defaults, err := Defaults()
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = *fileCfg
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// A data dir given without a print path moves the print path with it.
	if cfg.DataDir != "" && cfg.PrintPath == "" {
		cfg.PrintPath = filepath.Join(cfg.DataDir, printFileName)
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPrintPath)); v != "" {
		c.PrintPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvScrollThreshold)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s: not a number: %q", EnvScrollThreshold, v)
		}
		c.ScrollThreshold = n
	}
	return nil
}

// MergeWithDefaults fills empty fields from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.PrintPath == "" {
		result.PrintPath = defaults.PrintPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.ScrollThreshold == 0 {
		result.ScrollThreshold = defaults.ScrollThreshold
	}
	return result
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// LogPath is where the TUI writes logs while it owns the terminal.
func (c *Config) LogPath() string { return filepath.Join(c.DataDir, logFileName) }

// EnsureDataDir creates the data dir owner-only.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}
