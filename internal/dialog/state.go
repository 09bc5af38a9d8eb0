package dialog

import (
	"fmt"
	"strings"
)

// DisplayState represents how the dialog is currently presented
type DisplayState int

const (
	// StateNormal means the dialog floats at its stored position
	StateNormal DisplayState = iota
	// StateMinimized means the dialog is docked bottom-right as a title strip
	StateMinimized
	// StateMaximized means the dialog fills the whole viewport
	StateMaximized
)

// String returns the string representation of the state
func (s DisplayState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// ParseDisplayState converts a state name back into a DisplayState.
func ParseDisplayState(s string) (DisplayState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return StateNormal, nil
	case "minimized", "min":
		return StateMinimized, nil
	case "maximized", "max":
		return StateMaximized, nil
	default:
		return StateNormal, fmt.Errorf("unknown display state %q (want normal, minimized or maximized)", s)
	}
}
