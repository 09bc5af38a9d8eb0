package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/termdialog/internal/config"
)

// contentStyles lists the glamour standard styles offered by the editor.
var contentStyles = []string{"dark", "light", "dracula", "tokyo-night", "pink", "ascii", "notty"}

// ConfigForm edits the dialog section of a config with a huh form.
type ConfigForm struct {
	fTitle           string
	fWidth           string
	fHeight          string
	fTitlebarHeight  string
	fMinVisibleStrip string
	fDockMargin      string
	fBackdrop        bool
	fContentFile     string
	fContentStyle    string
	fLogLevel        string

	form *huh.Form
}

// NewConfigForm seeds the form fields from cfg.
func NewConfigForm(cfg *config.Config) *ConfigForm {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	f := &ConfigForm{
		fTitle:           cfg.Dialog.Title,
		fWidth:           strconv.Itoa(cfg.Dialog.Width),
		fHeight:          strconv.Itoa(cfg.Dialog.Height),
		fTitlebarHeight:  strconv.Itoa(cfg.Dialog.TitlebarHeight),
		fMinVisibleStrip: strconv.Itoa(cfg.Dialog.MinVisibleStrip),
		fDockMargin:      strconv.Itoa(cfg.Dialog.DockMargin),
		fBackdrop:        cfg.Appearance.Backdrop,
		fContentFile:     cfg.Content.File,
		fContentStyle:    cfg.Content.Style,
		fLogLevel:        cfg.LogLevel,
	}
	f.form = f.build()
	return f
}

func validateInt(min int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a whole number")
		}
		if v < min {
			return fmt.Errorf("must be >= %d", min)
		}
		return nil
	}
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func (f *ConfigForm) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Description("Text shown in the dialog title bar").
				Value(&f.fTitle),

			huh.NewInput().
				Key("width").
				Title("Width").
				Description("Dialog width in cells").
				Validate(validateInt(1)).
				Value(&f.fWidth),

			huh.NewInput().
				Key("height").
				Title("Height").
				Description("Dialog height in cells").
				Validate(validateInt(1)).
				Value(&f.fHeight),

			huh.NewInput().
				Key("titlebar_height").
				Title("Title Bar Height").
				Description("0 measures the rendered title bar").
				Validate(validateInt(0)).
				Value(&f.fTitlebarHeight),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("min_visible_strip").
				Title("Minimum Visible Strip").
				Description("Columns kept on screen after a drag").
				Validate(validateInt(0)).
				Value(&f.fMinVisibleStrip),

			huh.NewInput().
				Key("dock_margin").
				Title("Dock Margin").
				Description("Rows between the minimized strip and the bottom edge").
				Validate(validateInt(0)).
				Value(&f.fDockMargin),

			huh.NewConfirm().
				Key("backdrop").
				Title("Backdrop").
				Description("Dim the container while the dialog is open").
				Value(&f.fBackdrop),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("content_file").
				Title("Content File").
				Description("Markdown shown in the body (empty for the placeholder)").
				Value(&f.fContentFile),

			huh.NewSelect[string]().
				Key("content_style").
				Title("Content Style").
				Options(stringOptions(contentStyles)...).
				Value(&f.fContentStyle),

			huh.NewSelect[string]().
				Key("log_level").
				Title("Log Level").
				Options(stringOptions([]string{"debug", "info", "warn", "error"})...).
				Value(&f.fLogLevel),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

// Run shows the form on the terminal and blocks until it is submitted or
// aborted.
func (f *ConfigForm) Run() error {
	return f.form.Run()
}

// Apply copies the form values into cfg and validates the result. cfg is
// left untouched on error.
func (f *ConfigForm) Apply(cfg *config.Config) error {
	next := *cfg

	next.Dialog.Title = config.NormalizeTitle(f.fTitle)
	if next.Dialog.Title == "" {
		next.Dialog.Title = config.DefaultTitle
	}

	ints := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"width", f.fWidth, &next.Dialog.Width},
		{"height", f.fHeight, &next.Dialog.Height},
		{"titlebar_height", f.fTitlebarHeight, &next.Dialog.TitlebarHeight},
		{"min_visible_strip", f.fMinVisibleStrip, &next.Dialog.MinVisibleStrip},
		{"dock_margin", f.fDockMargin, &next.Dialog.DockMargin},
	}
	for _, it := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(it.raw))
		if err != nil {
			return fmt.Errorf("%s: %w", it.name, err)
		}
		*it.dst = v
	}

	next.Appearance.Backdrop = f.fBackdrop
	next.Content.File = strings.TrimSpace(f.fContentFile)
	if f.fContentStyle != "" {
		next.Content.Style = f.fContentStyle
	}
	if f.fLogLevel != "" {
		next.LogLevel = f.fLogLevel
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = next
	return nil
}
