package hellobutton

import (
	"io"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/internal"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
)

// Driver is what App registers with the toolkit: a display flush, text
// measurement and a pointer. OnQuit installs the callback for a window
// close request.
type Driver interface {
	ui.Flusher
	ui.Font
	ui.PointerReader
	OnQuit(fn func())
}

// Backend is the SDL Driver returned by Init.
type Backend struct {
	window  *internal.Window
	mouse   *internal.MouseState
	pointer ui.PointerReader
	closer  io.Closer

	screen *ui.Screen
	onQuit func()
}

var _ Driver = (*Backend)(nil)

// Flush draws area of scr into the draw buffer and presents it.
func (b *Backend) Flush(scr *ui.Screen, area ui.Rect) error {
	b.screen = scr
	return b.window.Flush(scr, area)
}

func (b *Backend) Measure(text string) (int32, int32) {
	return b.window.Font.Measure(text)
}

// ReadPointer drains SDL events first so a close request or an exposed
// window is handled even when the pointer comes from evdev.
func (b *Backend) ReadPointer() ui.PointerData {
	events := b.window.PumpEvents(b.mouse)

	if events.Quit && b.onQuit != nil {
		b.onQuit()
	}
	if events.Exposed && b.screen != nil {
		b.screen.Invalidate()
	}

	return b.pointer.ReadPointer()
}

func (b *Backend) OnQuit(fn func()) {
	b.onQuit = fn
}

// Window returns the underlying SDL window wrapper.
func (b *Backend) Window() *internal.Window {
	return b.window
}

func (b *Backend) close() {
	if b.closer != nil {
		if err := b.closer.Close(); err != nil {
			GetLogger().Warn("Failed to close pointer device", "error", err)
		}
	}
}
