package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/lockpipe/internal/logging"
)

// EnvPrefix is the prefix shared by every environment variable lockpipe
// reads.
const EnvPrefix = "LOCKPIPE"

// Default values, used when no layer sets a value.
const (
	DefaultPath      = "/run/forever"
	DefaultLogFilter = "info"
	DefaultLogStyle  = "auto"
)

// Config holds resolved settings.
type Config struct {
	// Path is where the pipe lives.
	Path string `json:"path" yaml:"path"`

	// LogFilter is the log filter, see logging.ParseFilter.
	LogFilter string `json:"logFilter" yaml:"log_filter"`

	// LogStyle is the log colour style, see logging.ParseStyle.
	LogStyle string `json:"logStyle" yaml:"log_style"`
}

// env mirrors the environment layer. Fields have no default tags so that
// unset variables leave lower layers untouched.
type env struct {
	Path      string
	LogFilter string `split_words:"true"`
	LogStyle  string `split_words:"true"`
	Config    string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Path:      DefaultPath,
		LogFilter: DefaultLogFilter,
		LogStyle:  DefaultLogStyle,
	}
}

// Load resolves configuration from defaults, the config file and the
// environment. file names the config file; when empty, LOCKPIPE_CONFIG is
// consulted, and when that is empty too no file is read.
func Load(file string) (Config, error) {
	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := Default()

	if file == "" {
		file = e.Config
	}
	if file != "" {
		fromFile, err := LoadFile(file)
		if err != nil {
			return Config{}, err
		}
		cfg.merge(fromFile)
	}

	cfg.merge(Config{Path: e.Path, LogFilter: e.LogFilter, LogStyle: e.LogStyle})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a config file. Only the fields present in the file are
// set in the result.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		// JSONC allows comments and trailing commas; strip them before
		// handing the document to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	return cfg, nil
}

// merge overwrites fields of c with the non-empty fields of other.
func (c *Config) merge(other Config) {
	if other.Path != "" {
		c.Path = other.Path
	}
	if other.LogFilter != "" {
		c.LogFilter = other.LogFilter
	}
	if other.LogStyle != "" {
		c.LogStyle = other.LogStyle
	}
}

// Validate checks that the log settings can be understood.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("pipe path must not be empty")
	}
	if _, err := logging.ParseFilter(c.LogFilter); err != nil {
		return err
	}
	if _, err := logging.ParseStyle(c.LogStyle); err != nil {
		return err
	}
	return nil
}

// Logging returns the logger configuration for c.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Filter = c.LogFilter
	cfg.Style = c.LogStyle
	return cfg
}
