package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/termdialog/internal/dialog"
)

// DialogConfig sizes the floating dialog in terminal cells.
type DialogConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TitlebarHeight is used for the bottom-edge clamp; 0 measures the
	// rendered title bar instead.
	TitlebarHeight  int `yaml:"titlebar_height"`
	MinVisibleStrip int `yaml:"min_visible_strip"`
	DockMargin      int `yaml:"dock_margin"`
}

// AppearanceConfig controls colors and the backdrop.
type AppearanceConfig struct {
	Backdrop     bool   `yaml:"backdrop"`
	BackdropChar string `yaml:"backdrop_char"`
	AccentColor  string `yaml:"accent_color"` // lipgloss color for the title bar
}

// ContentConfig selects what is rendered in the dialog body.
type ContentConfig struct {
	// File is a markdown file shown in the body (empty = built-in text).
	File string `yaml:"file,omitempty"`
	// Style is a glamour standard style: dark, light, notty, ascii...
	Style string `yaml:"style"`
}

// Config is the effective termdialog configuration.
type Config struct {
	Dialog     DialogConfig     `yaml:"dialog"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Content    ContentConfig    `yaml:"content"`
	LogLevel   string           `yaml:"log_level"`
	// LogFile overrides the default log location under the state directory.
	LogFile string `yaml:"log_file,omitempty"`
}

const DefaultTitle = "Dialog"

// NormalizeTitle folds control characters and runs of whitespace in title
// into single spaces so it always renders on one row.
func NormalizeTitle(title string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, title)
	return strings.Join(strings.Fields(clean), " ")
}

func DefaultConfig() *Config {
	return &Config{
		Dialog: DialogConfig{
			Title:           DefaultTitle,
			Width:           dialog.DefaultWidth,
			Height:          dialog.DefaultHeight,
			TitlebarHeight:  0, // measure
			MinVisibleStrip: dialog.DefaultMinVisibleStrip,
			DockMargin:      dialog.DefaultDockMargin,
		},
		Appearance: AppearanceConfig{
			Backdrop:     true,
			BackdropChar: "░",
			AccentColor:  "62",
		},
		Content: ContentConfig{
			Style: "dark",
		},
		LogLevel: "info",
	}
}

// DialogOptions converts the dialog section into core options. A zero
// titlebar height is replaced by measured.
func (c *Config) DialogOptions(measured int) dialog.Options {
	tb := c.Dialog.TitlebarHeight
	if tb <= 0 {
		tb = measured
	}
	return dialog.Options{
		Width:           c.Dialog.Width,
		Height:          c.Dialog.Height,
		TitlebarHeight:  tb,
		MinVisibleStrip: c.Dialog.MinVisibleStrip,
		DockMargin:      c.Dialog.DockMargin,
	}
}

// Save writes the configuration to path, or to the standard location when
// path is empty.
//
// Note: this marshals the effective config and will not preserve comments
// from the original YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Dialog.Width < 1 {
		return &ValidationError{Path: "dialog.width", Err: fmt.Errorf("width must be >= 1")}
	}
	if c.Dialog.Height < 1 {
		return &ValidationError{Path: "dialog.height", Err: fmt.Errorf("height must be >= 1")}
	}
	if c.Dialog.TitlebarHeight < 0 {
		return &ValidationError{Path: "dialog.titlebar_height", Err: fmt.Errorf("titlebar_height must be >= 0")}
	}
	if c.Dialog.TitlebarHeight > c.Dialog.Height {
		return &ValidationError{Path: "dialog.titlebar_height", Err: fmt.Errorf("titlebar_height must not exceed height (%d)", c.Dialog.Height)}
	}
	if c.Dialog.MinVisibleStrip < 0 {
		return &ValidationError{Path: "dialog.min_visible_strip", Err: fmt.Errorf("min_visible_strip must be >= 0")}
	}
	if c.Dialog.MinVisibleStrip > c.Dialog.Width {
		return &ValidationError{Path: "dialog.min_visible_strip", Err: fmt.Errorf("min_visible_strip must not exceed width (%d)", c.Dialog.Width)}
	}
	if c.Dialog.DockMargin < 0 {
		return &ValidationError{Path: "dialog.dock_margin", Err: fmt.Errorf("dock_margin must be >= 0")}
	}
	if c.Appearance.Backdrop && (len([]rune(c.Appearance.BackdropChar)) != 1 || runewidth.StringWidth(c.Appearance.BackdropChar) != 1) {
		return &ValidationError{Path: "appearance.backdrop_char", Err: fmt.Errorf("backdrop_char must be a single one-cell character")}
	}
	if strings.TrimSpace(c.Content.Style) == "" {
		return &ValidationError{Path: "content.style", Err: fmt.Errorf("style is required")}
	}
	if !isValidLogLevel(c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
