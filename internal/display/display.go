// Package display provides the window the processed frames are shown in.
package display

import (
	"time"

	"gocv.io/x/gocv"
)

// NoKey is returned by PollKey when nothing was pressed.
const NoKey = -1

// Display defines the interface for a surface that shows frames and reports key presses.
type Display interface {
	Show(img *gocv.Mat)
	// PollKey waits up to delay for a key press and returns its code, or NoKey.
	PollKey(delay time.Duration) int
	Close() error
}

// Window is a Display backed by a HighGUI window.
// The native window is created on the first Show so a failed startup never opens one.
// HighGUI must be driven from the main OS thread.
type Window struct {
	name string
	win  *gocv.Window
}

// NewWindow returns a Window that will use the given title.
func NewWindow(name string) *Window {
	return &Window{name: name}
}

// Show draws img in the window, opening it if needed.
func (w *Window) Show(img *gocv.Mat) {
	if w.win == nil {
		w.win = gocv.NewWindow(w.name)
	}
	w.win.IMShow(*img)
}

// PollKey waits at least one millisecond for a key press.
// Without an open window there is nothing to poll.
func (w *Window) PollKey(delay time.Duration) int {
	if w.win == nil {
		return NoKey
	}
	ms := max(1, int(delay/time.Millisecond))
	return w.win.WaitKey(ms)
}

// IsOpen reports whether the native window exists.
func (w *Window) IsOpen() bool {
	return w.win != nil
}

// Close destroys the native window. Calling it again is a no-op.
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}
