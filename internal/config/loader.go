package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the prefix for environment overrides.
const envPrefix = "BENCHEDIT_"

// Load builds the effective configuration: defaults, then the TOML file at
// path (DefaultPath when empty), then environment overrides. A missing
// config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the TOML file at path over cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{
			Path:    path,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}

// applyEnv overlays environment variables on cfg. A local .env file is
// read first so ad-hoc runs can carry their settings with the working
// directory.
func applyEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if v, ok := os.LookupEnv(envPrefix + "TAB_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTAB_WIDTH: %w", envPrefix, err)
		}
		cfg.Editor.TabWidth = n
	}
	if v, ok := os.LookupEnv(envPrefix + "INDENT_STYLE"); ok {
		cfg.Editor.IndentStyle = v
	}
	if v, ok := os.LookupEnv(envPrefix + "COMMENT_PREFIX"); ok {
		cfg.Language.CommentPrefix = v
	}
	if v, ok := os.LookupEnv(envPrefix + "THEME"); ok {
		cfg.UI.Theme = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PLUGIN_DIR"); ok {
		cfg.Plugin.Dir = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PLUGINS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sPLUGINS: %w", envPrefix, err)
		}
		cfg.Plugin.Enabled = b
	}
	return nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
