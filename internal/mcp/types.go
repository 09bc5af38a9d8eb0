package mcp

// ViewportArg is a viewport size in cells.
type ViewportArg struct {
	Width  int `json:"width" jsonschema:"Viewport width in cells"`
	Height int `json:"height" jsonschema:"Viewport height in cells"`
}

// PointArg is a screen coordinate in cells.
type PointArg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RectOutput is a rectangle in viewport coordinates.
type RectOutput struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizingArgs overrides the configured dialog sizing for a single call.
type SizingArgs struct {
	Width           *int `json:"width,omitempty" jsonschema:"Dialog width in cells (default: config dialog.width)"`
	Height          *int `json:"height,omitempty" jsonschema:"Dialog height in cells (default: config dialog.height)"`
	TitlebarHeight  *int `json:"titlebar_height,omitempty" jsonschema:"Title bar height used for clamping and the minimized strip (default: config or 1)"`
	MinVisibleStrip *int `json:"min_visible_strip,omitempty" jsonschema:"Columns that must stay on screen after a drag (default: config dialog.min_visible_strip)"`
	DockMargin      *int `json:"dock_margin,omitempty" jsonschema:"Gap between the minimized strip and the bottom edge (default: config dialog.dock_margin)"`
}

// DialogLayoutInput is the input for the dialog_layout tool.
type DialogLayoutInput struct {
	Viewport ViewportArg `json:"viewport" jsonschema:"Viewport size"`
	State    string      `json:"state,omitempty" jsonschema:"Display state: normal, minimized or maximized (default: normal)"`
	Position *PointArg   `json:"position,omitempty" jsonschema:"Stored normal-state origin (default: centered)"`
	Sizing   SizingArgs  `json:"sizing,omitempty"`
}

// DialogLayoutOutput is the output for the dialog_layout tool.
type DialogLayoutOutput struct {
	State          string     `json:"state"`
	Rect           RectOutput `json:"rect"`
	Titlebar       RectOutput `json:"titlebar"`
	Docked         bool       `json:"docked"`
	ContentVisible bool       `json:"content_visible"`
}

// SimulateAction is one step of a dialog_simulate script.
type SimulateAction struct {
	Action string `json:"action" jsonschema:"One of: open, close, minimize, maximize, restore, press, move, release, resize, unmount"`
	X      int    `json:"x,omitempty" jsonschema:"Pointer x for press/move/release"`
	Y      int    `json:"y,omitempty" jsonschema:"Pointer y for press/move/release"`
	Width  int    `json:"width,omitempty" jsonschema:"Viewport width for resize"`
	Height int    `json:"height,omitempty" jsonschema:"Viewport height for resize"`
}

// DialogSimulateInput is the input for the dialog_simulate tool.
type DialogSimulateInput struct {
	Viewport *ViewportArg     `json:"viewport,omitempty" jsonschema:"Initial viewport; omit to start unmounted"`
	Actions  []SimulateAction `json:"actions" jsonschema:"Ordered actions to apply"`
	Sizing   SizingArgs       `json:"sizing,omitempty"`
}

// SimulateStep records the dialog after one action.
type SimulateStep struct {
	Action   string   `json:"action"`
	Applied  bool     `json:"applied"`
	State    string   `json:"state"`
	Position PointArg `json:"position"`
	Dragging bool     `json:"dragging"`
}

// DialogSimulateOutput is the output for the dialog_simulate tool.
type DialogSimulateOutput struct {
	Open           bool           `json:"open"`
	Mounted        bool           `json:"mounted"`
	State          string         `json:"state"`
	Position       PointArg       `json:"position"`
	Rect           RectOutput     `json:"rect"`
	ContentVisible bool           `json:"content_visible"`
	Dragging       bool           `json:"dragging"`
	Listeners      int            `json:"listeners"`
	Steps          []SimulateStep `json:"steps"`
}
