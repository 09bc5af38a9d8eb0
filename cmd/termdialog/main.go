package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/termdialog/internal/config"
	"github.com/1broseidon/termdialog/internal/dialog"
	"github.com/1broseidon/termdialog/internal/geometry"
	"github.com/1broseidon/termdialog/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runTUI(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runTUI(os.Args[2:]))
	case "geometry":
		os.Exit(runGeometry(os.Args[2:], os.Stdout))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: termdialog [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the dialog playground (default)")
	fmt.Fprintln(w, "  geometry            Print dialog layouts for a viewport")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config edit         Edit configuration interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'termdialog <command> --help' for command-specific options.")
}

// loadConfig loads from path, or from the standard location when path is
// empty. It returns the path that was used.
func loadConfig(path string) (*config.LoadResult, string, error) {
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}
	res, err := config.LoadFromPath(path)
	return res, path, err
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
	noWatch := fs.Bool("no-watch", false, "Do not reload the config when the file changes")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: termdialog run [--path PATH] [--no-watch]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Full-screen container with a draggable floating dialog.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Mouse:")
		fmt.Fprintln(os.Stderr, "  Click the button   Open the dialog")
		fmt.Fprintln(os.Stderr, "  Drag title bar     Move the dialog (normal state only)")
		fmt.Fprintln(os.Stderr, "  min/MAX/normal/X   Minimize, maximize, restore, close")
		fmt.Fprintln(os.Stderr, "  Wheel              Scroll the dialog body")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keys:")
		fmt.Fprintln(os.Stderr, "  Enter, Space       Open the dialog")
		fmt.Fprintln(os.Stderr, "  ↑/↓, PgUp/PgDn     Scroll the dialog body")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C          Quit")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	res, cfgPath, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, closeLog, err := newLogger(res.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := tui.Run(ctx, tui.Options{
		Config:     res.Config,
		ConfigPath: cfgPath,
		Watch:      !*noWatch,
		Logger:     logger,
	}); err != nil {
		logger.Error("tui failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// geometryReport is the YAML document printed by the geometry command.
type geometryReport struct {
	Viewport geometry.Size         `yaml:"viewport"`
	Dialog   geometry.Size         `yaml:"dialog"`
	Layouts  map[string]layoutYAML `yaml:"layouts"`
}

type layoutYAML struct {
	X              int  `yaml:"x"`
	Y              int  `yaml:"y"`
	Width          int  `yaml:"width"`
	Height         int  `yaml:"height"`
	Docked         bool `yaml:"docked"`
	ContentVisible bool `yaml:"content_visible"`
}

func runGeometry(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("geometry", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
	width := fs.Int("width", 80, "Viewport width in cells")
	height := fs.Int("height", 24, "Viewport height in cells")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: termdialog geometry [--path PATH] [--width N] [--height N]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the normal, minimized and maximized dialog rects as YAML.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if *width < 0 || *height < 0 {
		fmt.Fprintln(os.Stderr, "width and height must not be negative")
		return 2
	}

	res, _, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	data, err := yaml.Marshal(buildGeometryReport(res.Config, *width, *height))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprint(out, string(data))
	return 0
}

func buildGeometryReport(cfg *config.Config, width, height int) geometryReport {
	d := dialog.New(cfg.DialogOptions(dialog.DefaultTitlebarHeight), nil)
	d.SetViewport(width, height)
	d.SetOpen(true)

	report := geometryReport{
		Viewport: geometry.Size{Width: width, Height: height},
		Dialog:   geometry.Size{Width: d.Options().Width, Height: d.Options().Height},
		Layouts:  make(map[string]layoutYAML, 3),
	}
	steps := []struct {
		state dialog.DisplayState
		apply func()
	}{
		{dialog.StateNormal, d.Restore},
		{dialog.StateMinimized, d.Minimize},
		{dialog.StateMaximized, d.Maximize},
	}
	for _, s := range steps {
		s.apply()
		l := d.Layout()
		report.Layouts[s.state.String()] = layoutYAML{
			X:              l.Rect.X,
			Y:              l.Rect.Y,
			Width:          l.Rect.Width,
			Height:         l.Rect.Height,
			Docked:         l.Docked,
			ContentVisible: l.ContentVisible,
		}
	}
	return report
}

// runConfigPrint writes the effective config, or the built-in defaults with
// --defaults, as YAML.
func runConfigPrint(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(errOut)
	path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
	printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
	printEffective := fs.Bool("effective", false, "Print effective config (default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *printDefaults && *printEffective {
		fmt.Fprintln(errOut, "--effective and --defaults are mutually exclusive")
		return 2
	}

	cfg := config.DefaultConfig()
	if !*printDefaults {
		res, _, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		if res.File != "" {
			fmt.Fprintf(out, "# file: %s\n", res.File)
		}
		cfg = res.Config
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	fmt.Fprint(out, string(data))
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  termdialog config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  termdialog config print [--path PATH] [--effective|--defaults]")
		fmt.Fprintln(os.Stderr, "  termdialog config explain [--path PATH] <yaml.path>")
		fmt.Fprintln(os.Stderr, "  termdialog config edit [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if _, _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		return runConfigPrint(args[1:], os.Stdout, os.Stderr)

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "explain requires <yaml.path>")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Known paths:")
			for _, p := range config.ExplainPaths() {
				fmt.Fprintf(os.Stderr, "  %s\n", p)
			}
			return 2
		}
		queryPath := fs.Arg(0)

		res, _, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		value, src, err := config.Explain(res, queryPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Printf("path: %s\n", queryPath)
		fmt.Printf("source: %s\n", formatSource(src))
		fmt.Printf("value:\n%s", string(out))
		return 0

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/termdialog/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		return runConfigEdit(*path)

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func runConfigEdit(path string) int {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "config edit requires an interactive terminal")
		return 1
	}

	res, cfgPath, err := loadConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg := res.Config
	form := tui.NewConfigForm(cfg)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, "config: unchanged")
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := form.Apply(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Save(cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("config: saved %s\n", cfgPath)
	return 0
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	case config.SourceDefault:
		if src.Name != "" {
			return "default:" + src.Name
		}
		return "default"
	default:
		return string(src.Kind)
	}
}
