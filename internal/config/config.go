package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Config is the full benchedit configuration.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	Language LanguageConfig `toml:"language"`
	UI       UIConfig       `toml:"ui"`
	Plugin   PluginConfig   `toml:"plugin"`
	Log      LogConfig      `toml:"log"`
}

// EditorConfig holds indentation settings.
type EditorConfig struct {
	// TabWidth is the indentation step in columns.
	TabWidth int `toml:"tab_width"`
	// IndentStyle is "spaces" or "tabs".
	IndentStyle string `toml:"indent_style"`
	// TrimTrailingSpace removes trailing whitespace when rewriting.
	TrimTrailingSpace bool `toml:"trim_trailing_space"`
}

// LanguageConfig holds the BenchScript language surface settings.
type LanguageConfig struct {
	// CommentPrefix is the single character that starts a line comment.
	CommentPrefix string `toml:"comment_prefix"`
	// ExtraOpeners are additional block-opening keywords.
	ExtraOpeners []string `toml:"extra_openers"`
	// ExtraClosers are additional block-closing keywords.
	ExtraClosers []string `toml:"extra_closers"`
	// DocPaths are files or directories holding extra help entries.
	DocPaths []string `toml:"doc_paths"`
}

// UIConfig holds viewer settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// PluginConfig holds Lua extension settings.
type PluginConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level"`
	// File, when set, sends the log to a rotating file instead of stderr.
	File string `toml:"file"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    4,
			IndentStyle: "spaces",
		},
		Language: LanguageConfig{
			CommentPrefix: "!",
		},
		UI: UIConfig{
			Theme: "default",
		},
		Plugin: PluginConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the standard config file location,
// e.g. ~/.config/benchedit/config.toml on Unix.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "benchedit", "config.toml")
}

// DefaultPluginDir returns the standard plugin directory,
// e.g. ~/.config/benchedit/plugins.
func DefaultPluginDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "benchedit", "plugins")
}

// Validate checks the configuration for values no component can accept.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return ErrTabWidth
	}
	switch strings.ToLower(c.Editor.IndentStyle) {
	case "", "spaces", "space", "tabs", "tab":
	default:
		return ErrIndentStyle
	}
	if p := c.Language.CommentPrefix; p != "" {
		if utf8.RuneCountInString(p) != 1 || strings.TrimSpace(p) == "" {
			return ErrCommentPrefix
		}
	}
	return nil
}
