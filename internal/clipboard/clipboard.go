// Package clipboard moves images and text between the editor and the system
// clipboard.
package clipboard

import (
	"errors"
	"os"
)

var (
	// ErrNoDisplay is returned when no X11 or Wayland display is reachable.
	ErrNoDisplay = errors.New("clipboard requires DISPLAY or WAYLAND_DISPLAY")
	// ErrEmpty is returned when the clipboard holds no data of the requested kind.
	ErrEmpty = errors.New("clipboard does not contain the requested data")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
