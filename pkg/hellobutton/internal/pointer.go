package internal

import (
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/veandco/go-sdl2/sdl"
)

// MouseState tracks the left mouse button and cursor position from SDL events.
// Coordinates are logical, since the renderer has a fixed logical size.
//
// A press is latched until it has been read once, so a press and release
// arriving in the same pump still reach the reader as two samples.
type MouseState struct {
	point   ui.Point
	pressed bool
	latched bool
}

func NewMouseState() *MouseState {
	return &MouseState{}
}

func (m *MouseState) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.MouseMotionEvent:
		m.point = ui.Point{X: e.X, Y: e.Y}
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		m.point = ui.Point{X: e.X, Y: e.Y}
		m.pressed = e.State == sdl.PRESSED
		if m.pressed {
			m.latched = true
		}
	}
}

// ReadPointer returns the state as of the last PumpEvents.
func (m *MouseState) ReadPointer() ui.PointerData {
	pressed := m.pressed || m.latched
	m.latched = false
	return ui.PointerData{Point: m.point, Pressed: pressed}
}
