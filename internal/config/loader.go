package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

type Source struct {
	Kind   SourceKind
	Name   string // for default
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML-path -> source (file only)
	File    string            // loaded file, empty when only defaults apply
}

func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "termdialog", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "termdialog", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	res, err := LoadWithSources()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSources loads config and returns file-level sources for introspection.
func LoadWithSources() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from path. A missing file yields the defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	raw := RawConfig{}
	sources := map[string]Source{}
	loaded := ""

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		var canon string
		raw, sources, canon, err = loadRaw(path)
		if err != nil {
			return nil, err
		}
		loaded = canon
	}

	cfg, err := BuildEffectiveConfig(raw)
	if err != nil {
		return nil, attachSourceContext(err, sources)
	}
	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, sources)
	}

	return &LoadResult{
		Config:  cfg,
		Sources: sources,
		File:    loaded,
	}, nil
}

func loadRaw(path string) (RawConfig, map[string]Source, string, error) {
	canon, err := canonicalPath(path)
	if err != nil {
		return RawConfig{}, nil, "", err
	}

	data, err := os.ReadFile(canon)
	if err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}

	var raw RawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return RawConfig{}, nil, "", fmt.Errorf("%s: %w", canon, err)
	}

	return raw, collectSources(&doc, canon), canon, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Best-effort; still use abs.
		return abs, nil
	}
	return real, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if doc == nil {
		return out
	}
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	collectSourcesRec(node, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		path := keyNode.Value
		if prefix != "" {
			path = prefix + "." + keyNode.Value
		}
		out[path] = Source{
			Kind:   SourceFile,
			File:   file,
			Line:   valNode.Line,
			Column: valNode.Column,
		}
		collectSourcesRec(valNode, file, path, out)
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	verr, ok := err.(*ValidationError)
	if !ok || verr == nil {
		return err
	}
	if verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}

var explainers = map[string]func(*Config) any{
	"dialog.title":             func(c *Config) any { return c.Dialog.Title },
	"dialog.width":             func(c *Config) any { return c.Dialog.Width },
	"dialog.height":            func(c *Config) any { return c.Dialog.Height },
	"dialog.titlebar_height":   func(c *Config) any { return c.Dialog.TitlebarHeight },
	"dialog.min_visible_strip": func(c *Config) any { return c.Dialog.MinVisibleStrip },
	"dialog.dock_margin":       func(c *Config) any { return c.Dialog.DockMargin },
	"appearance.backdrop":      func(c *Config) any { return c.Appearance.Backdrop },
	"appearance.backdrop_char": func(c *Config) any { return c.Appearance.BackdropChar },
	"appearance.accent_color":  func(c *Config) any { return c.Appearance.AccentColor },
	"content.file":             func(c *Config) any { return c.Content.File },
	"content.style":            func(c *Config) any { return c.Content.Style },
	"log_level":                func(c *Config) any { return c.LogLevel },
	"log_file":                 func(c *Config) any { return c.LogFile },
}

// ExplainPaths lists the paths accepted by Explain.
func ExplainPaths() []string {
	out := make([]string, 0, len(explainers))
	for p := range explainers {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Explain returns the effective value at the given YAML path and where it
// came from.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}
	get, ok := explainers[path]
	if !ok {
		return nil, Source{}, fmt.Errorf("unknown path: %s", path)
	}
	if src, ok := res.Sources[path]; ok {
		return get(res.Config), src, nil
	}
	return get(res.Config), Source{Kind: SourceDefault, Name: "defaults"}, nil
}
