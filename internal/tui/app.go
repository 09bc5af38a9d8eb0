package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/1broseidon/termdialog/internal/config"
	"github.com/1broseidon/termdialog/internal/dialog"
	"github.com/1broseidon/termdialog/internal/geometry"
)

const triggerLabel = "Click to Open Dialog"

// CloseRequestedMsg is emitted by the dialog's close button. The host
// answers it by clearing its open flag.
type CloseRequestedMsg struct{}

// ConfigReloadedMsg carries the result of a config file reload.
type ConfigReloadedMsg struct {
	Result *config.LoadResult
	Err    error
}

func requestClose() tea.Msg { return CloseRequestedMsg{} }

// Model is the root bubbletea model: a full-screen container with a trigger
// button that opens a single floating dialog.
type Model struct {
	cfg   *config.Config
	log   *slog.Logger
	theme theme
	keys  keyMap
	help  help.Model

	// open is the host-owned visibility flag mirrored into the dialog.
	open bool
	doc  *dialog.Document
	dlg  *dialog.Dialog

	titlebarHeight int
	content        *bodyContent
	body           viewport.Model
	bodyW, bodyH   int

	// notice is the last non-fatal error shown in the help line.
	notice string

	width  int
	height int
}

// NewModel builds the root model from the effective config. A nil logger
// discards output.
func NewModel(cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg:  cfg,
		log:  logger,
		keys: newKeyMap(),
		help: help.New(),
		doc:  dialog.NewDocument(),
		body: viewport.New(0, 0),
	}
	m.theme = newTheme(cfg.Appearance)
	m.titlebarHeight = m.effectiveTitlebarHeight()
	m.dlg = dialog.New(m.dialogOptions(), m.doc)
	m.loadContent()
	return m
}

// Dialog exposes the dialog core driven by this model.
func (m Model) Dialog() *dialog.Dialog {
	return m.dlg
}

// Open reports the host's open flag.
func (m Model) Open() bool {
	return m.open
}

// Unmount releases any pointer listeners still held by the dialog.
func (m Model) Unmount() {
	m.dlg.Unmount()
}

func (m Model) effectiveTitlebarHeight() int {
	if m.cfg.Dialog.TitlebarHeight > 0 {
		return m.cfg.Dialog.TitlebarHeight
	}
	return measureTitlebar(m.theme)
}

func (m Model) dialogOptions() dialog.Options {
	opts := m.cfg.DialogOptions(m.titlebarHeight)
	opts.Logger = m.log
	return opts
}

func (m *Model) loadContent() {
	c, err := loadContent(m.cfg.Content)
	if err != nil {
		m.log.Warn("content load failed", "file", m.cfg.Content.File, "error", err)
		m.notice = err.Error()
	}
	m.content = c
	m.bodyW, m.bodyH = -1, -1
	m.syncBody()
}

// setOpen applies the host's open flag to the dialog.
func (m *Model) setOpen(open bool) {
	m.open = open
	m.dlg.SetOpen(open)
	m.keys.setOpen(open)
	m.syncBody()
}

// syncBody resizes the body viewport to the current layout and re-renders
// its content when the inner size changed.
func (m *Model) syncBody() {
	w, h := bodySize(m.dlg.Layout(), m.titlebarHeight)
	if w == m.bodyW && h == m.bodyH {
		return
	}
	m.bodyW, m.bodyH = w, h
	m.body.Width = w
	m.body.Height = h
	m.body.SetContent(m.content.render(w, h))
}

// applyConfig swaps in a reloaded config. Position and display state are
// kept.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.theme = newTheme(cfg.Appearance)
	m.titlebarHeight = m.effectiveTitlebarHeight()
	m.dlg.SetOptions(m.dialogOptions())
	m.notice = ""
	m.loadContent()
}

// triggerRect is the screen area of the trigger button.
func (m Model) triggerRect() geometry.Rect {
	btn := m.theme.trigger.Render(triggerLabel)
	w, h := lipgloss.Width(btn), lipgloss.Height(btn)
	area := geometry.Size{Width: m.width, Height: m.height - 1}
	origin := geometry.CenterIn(area, geometry.Size{Width: w, Height: h})
	return geometry.RectAt(origin, geometry.Size{Width: w, Height: h})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dlg.SetViewport(msg.Width, msg.Height)
		m.syncBody()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case CloseRequestedMsg:
		m.setOpen(false)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.notice = "config: " + msg.Err.Error()
			return m, nil
		}
		if msg.Result != nil && msg.Result.Config != nil {
			m.applyConfig(msg.Result.Config)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.setOpen(true)
		return m, nil
	case key.Matches(msg, m.keys.Scroll):
		if m.dlg.Layout().ContentVisible {
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := geometry.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionMotion:
		// Document listeners exist only during a drag, so motion is
		// otherwise ignored.
		m.doc.Move(p)
		return m, nil

	case tea.MouseActionRelease:
		if m.doc.Up(p) {
			m.syncBody()
		}
		return m, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			return m.handleWheel(msg, p)
		case tea.MouseButtonLeft:
			return m.handlePress(p)
		}
	}
	return m, nil
}

func (m Model) handleWheel(msg tea.MouseMsg, p geometry.Point) (tea.Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	l := m.dlg.Layout()
	if !l.ContentVisible || !l.Rect.Contains(p) {
		return m, nil
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) handlePress(p geometry.Point) (tea.Model, tea.Cmd) {
	if !m.open {
		if m.triggerRect().Contains(p) {
			m.setOpen(true)
		}
		return m, nil
	}

	bar := m.dlg.TitlebarRect()
	if !bar.Contains(p) {
		return m, nil
	}

	if p.Y == bar.Y {
		if b, ok := buttonAt(bar.Width, p.X-bar.X); ok {
			return m.pressButton(b)
		}
	}
	m.dlg.StartDrag(p)
	return m, nil
}

func (m Model) pressButton(b toolbarButton) (tea.Model, tea.Cmd) {
	switch b {
	case buttonMinimize:
		m.dlg.Minimize()
	case buttonMaximize:
		m.dlg.Maximize()
	case buttonNormal:
		m.dlg.Restore()
	case buttonClose:
		return m, requestClose
	}
	m.syncBody()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	screen := geometry.Size{Width: m.width, Height: m.height}
	if screen.Empty() {
		return ""
	}

	var bg string
	if m.open && m.theme.showBackdrop {
		bg = m.renderBackdrop()
	} else {
		bg = m.renderContainer()
	}
	bg = overlay(bg, m.renderHelpLine(), 0, m.height-1, m.width, m.height)

	if !m.open {
		return bg
	}

	l := m.dlg.Layout()
	if !l.Rect.Intersects(geometry.RectAt(geometry.Point{}, screen)) {
		return bg
	}
	box := renderDialog(l, m.titlebarHeight, m.cfg.Dialog.Title, m.body.View(), m.theme)
	o := l.Rect.Origin()
	return overlay(bg, box, o.X, o.Y, m.width, m.height)
}

func (m Model) renderContainer() string {
	canvas := blankCanvas(m.width, m.height)
	r := m.triggerRect()
	return overlay(canvas, m.theme.trigger.Render(triggerLabel), r.X, r.Y, m.width, m.height)
}

func (m Model) renderBackdrop() string {
	ch := m.theme.backdropChar
	cw := runewidth.StringWidth(ch)
	if cw < 1 {
		ch, cw = " ", 1
	}
	n := m.width / cw
	row := m.theme.backdrop.Render(strings.Repeat(ch, n) + strings.Repeat(" ", m.width-n*cw))
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHelpLine() string {
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.notice != "" {
		line += "  " + m.theme.notice.Render(m.notice)
	}
	return ansi.Truncate(m.theme.help.Render(line), m.width, "…")
}
