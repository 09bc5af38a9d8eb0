package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/termdialog/internal/dialog"
	"github.com/1broseidon/termdialog/internal/geometry"
)

func (s *Server) dialogOptions(args SizingArgs) dialog.Options {
	opts := s.config.DialogOptions(dialog.DefaultTitlebarHeight)
	if args.Width != nil {
		opts.Width = *args.Width
	}
	if args.Height != nil {
		opts.Height = *args.Height
	}
	if args.TitlebarHeight != nil {
		opts.TitlebarHeight = *args.TitlebarHeight
	}
	if args.MinVisibleStrip != nil {
		opts.MinVisibleStrip = *args.MinVisibleStrip
	}
	if args.DockMargin != nil {
		opts.DockMargin = *args.DockMargin
	}
	opts.Logger = s.logger
	return opts
}

func validateViewport(v ViewportArg) error {
	if v.Width < 0 || v.Height < 0 {
		return fmt.Errorf("viewport must not be negative, got %dx%d", v.Width, v.Height)
	}
	return nil
}

func rectOutput(r geometry.Rect) RectOutput {
	return RectOutput{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func pointOutput(p geometry.Point) PointArg {
	return PointArg{X: p.X, Y: p.Y}
}

func applyState(d *dialog.Dialog, st dialog.DisplayState) {
	switch st {
	case dialog.StateMinimized:
		d.Minimize()
	case dialog.StateMaximized:
		d.Maximize()
	default:
		d.Restore()
	}
}

func (s *Server) handleDialogLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args DialogLayoutInput) (*mcpsdk.CallToolResult, DialogLayoutOutput, error) {
	if err := validateViewport(args.Viewport); err != nil {
		return nil, DialogLayoutOutput{}, err
	}
	st, err := dialog.ParseDisplayState(args.State)
	if err != nil {
		return nil, DialogLayoutOutput{}, err
	}

	d := dialog.New(s.dialogOptions(args.Sizing), nil)
	d.SetViewport(args.Viewport.Width, args.Viewport.Height)
	d.SetOpen(true)
	if args.Position != nil {
		d.MoveTo(geometry.Point{X: args.Position.X, Y: args.Position.Y})
	}
	applyState(d, st)

	l := d.Layout()
	return nil, DialogLayoutOutput{
		State:          l.State.String(),
		Rect:           rectOutput(l.Rect),
		Titlebar:       rectOutput(d.TitlebarRect()),
		Docked:         l.Docked,
		ContentVisible: l.ContentVisible,
	}, nil
}

func (s *Server) handleDialogSimulate(_ context.Context, _ *mcpsdk.CallToolRequest, args DialogSimulateInput) (*mcpsdk.CallToolResult, DialogSimulateOutput, error) {
	d := dialog.New(s.dialogOptions(args.Sizing), nil)
	if args.Viewport != nil {
		if err := validateViewport(*args.Viewport); err != nil {
			return nil, DialogSimulateOutput{}, err
		}
		d.SetViewport(args.Viewport.Width, args.Viewport.Height)
	}

	steps := make([]SimulateStep, 0, len(args.Actions))
	for i, a := range args.Actions {
		applied, err := applyAction(d, a)
		if err != nil {
			return nil, DialogSimulateOutput{}, fmt.Errorf("action %d: %w", i, err)
		}
		steps = append(steps, SimulateStep{
			Action:   strings.ToLower(strings.TrimSpace(a.Action)),
			Applied:  applied,
			State:    d.State().String(),
			Position: pointOutput(d.Position()),
			Dragging: d.Dragging(),
		})
	}

	_, mounted := d.Viewport()
	l := d.Layout()
	return nil, DialogSimulateOutput{
		Open:           d.IsOpen(),
		Mounted:        mounted,
		State:          d.State().String(),
		Position:       pointOutput(d.Position()),
		Rect:           rectOutput(l.Rect),
		ContentVisible: l.ContentVisible,
		Dragging:       d.Dragging(),
		Listeners:      d.Doc().Listeners(),
		Steps:          steps,
	}, nil
}

// applyAction performs one scripted action. The bool reports whether the
// action had an effect the core accepted (a press that starts a drag, a
// pointer event that reached a listener).
func applyAction(d *dialog.Dialog, a SimulateAction) (bool, error) {
	p := geometry.Point{X: a.X, Y: a.Y}
	switch strings.ToLower(strings.TrimSpace(a.Action)) {
	case "open":
		d.SetOpen(true)
		return true, nil
	case "close":
		d.SetOpen(false)
		return true, nil
	case "minimize", "min":
		d.Minimize()
		return d.IsOpen(), nil
	case "maximize", "max":
		d.Maximize()
		return d.IsOpen(), nil
	case "restore", "normal":
		d.Restore()
		return d.IsOpen(), nil
	case "press":
		return d.StartDrag(p), nil
	case "move":
		return d.Doc().Move(p), nil
	case "release":
		return d.Doc().Up(p), nil
	case "resize":
		if a.Width < 0 || a.Height < 0 {
			return false, fmt.Errorf("resize must not be negative, got %dx%d", a.Width, a.Height)
		}
		d.SetViewport(a.Width, a.Height)
		return true, nil
	case "unmount":
		d.Unmount()
		return true, nil
	case "":
		return false, fmt.Errorf("action is required")
	default:
		return false, fmt.Errorf("unknown action %q", a.Action)
	}
}
