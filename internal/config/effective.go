package config

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig overlays the keys present in raw onto DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if d := raw.Dialog; d != nil {
		if d.Title != nil {
			cfg.Dialog.Title = *d.Title
		}
		if d.Width != nil {
			cfg.Dialog.Width = *d.Width
		}
		if d.Height != nil {
			cfg.Dialog.Height = *d.Height
		}
		if d.TitlebarHeight != nil {
			cfg.Dialog.TitlebarHeight = *d.TitlebarHeight
		}
		if d.MinVisibleStrip != nil {
			cfg.Dialog.MinVisibleStrip = *d.MinVisibleStrip
		}
		if d.DockMargin != nil {
			cfg.Dialog.DockMargin = *d.DockMargin
		}
	}
	cfg.Dialog.Title = NormalizeTitle(cfg.Dialog.Title)
	if cfg.Dialog.Title == "" {
		cfg.Dialog.Title = DefaultTitle
	}

	if a := raw.Appearance; a != nil {
		if a.Backdrop != nil {
			cfg.Appearance.Backdrop = *a.Backdrop
		}
		if a.BackdropChar != nil {
			cfg.Appearance.BackdropChar = *a.BackdropChar
		}
		if a.AccentColor != nil {
			cfg.Appearance.AccentColor = *a.AccentColor
		}
	}

	if c := raw.Content; c != nil {
		if c.File != nil {
			cfg.Content.File = *c.File
		}
		if c.Style != nil {
			cfg.Content.Style = *c.Style
		}
	}

	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*raw.LogLevel)
	}
	if raw.LogFile != nil {
		cfg.LogFile = *raw.LogFile
	}

	return cfg, nil
}
