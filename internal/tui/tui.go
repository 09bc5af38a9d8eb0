package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/1broseidon/termdialog/internal/config"
)

// Options configures Run.
type Options struct {
	Config *config.Config
	// ConfigPath is watched for changes when Watch is set.
	ConfigPath string
	Watch      bool
	Logger     *slog.Logger
}

// Run starts the full-screen program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(opts.Config, logger)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	var g errgroup.Group
	if opts.Watch && opts.ConfigPath != "" {
		g.Go(func() error {
			err := config.Watch(ctx, opts.ConfigPath, logger, func(res *config.LoadResult, err error) {
				p.Send(ConfigReloadedMsg{Result: res, Err: err})
			})
			if err != nil {
				// The program keeps running without live reload.
				logger.Warn("config watch unavailable", "path", opts.ConfigPath, "error", err)
			}
			return err
		})
	}

	logger.Info("tui started")
	final, runErr := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Unmount()
	}
	cancel()
	_ = g.Wait()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", runErr)
	}
	logger.Info("tui exited")
	return nil
}
