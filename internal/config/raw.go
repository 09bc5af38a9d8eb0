package config

// Raw* types mirror the YAML layout with pointer fields so that unset keys
// can be told apart from zero values when overlaying defaults.

type RawDialogConfig struct {
	Title           *string `yaml:"title"`
	Width           *int    `yaml:"width"`
	Height          *int    `yaml:"height"`
	TitlebarHeight  *int    `yaml:"titlebar_height"`
	MinVisibleStrip *int    `yaml:"min_visible_strip"`
	DockMargin      *int    `yaml:"dock_margin"`
}

type RawAppearanceConfig struct {
	Backdrop     *bool   `yaml:"backdrop"`
	BackdropChar *string `yaml:"backdrop_char"`
	AccentColor  *string `yaml:"accent_color"`
}

type RawContentConfig struct {
	File  *string `yaml:"file"`
	Style *string `yaml:"style"`
}

type RawConfig struct {
	Dialog     *RawDialogConfig     `yaml:"dialog"`
	Appearance *RawAppearanceConfig `yaml:"appearance"`
	Content    *RawContentConfig    `yaml:"content"`
	LogLevel   *string              `yaml:"log_level"`
	LogFile    *string              `yaml:"log_file"`
}
