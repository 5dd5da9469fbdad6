package internal

import (
	"testing"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func mouseButton(state uint8, x, y int32) *sdl.MouseButtonEvent {
	return &sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: state, X: x, Y: y}
}

func TestMouseState_ClickWithinOnePump(t *testing.T) {
	m := NewMouseState()

	m.handle(mouseButton(sdl.PRESSED, 240, 160))
	m.handle(mouseButton(sdl.RELEASED, 240, 160))

	assert.Equal(t, ui.PointerData{Point: ui.Point{X: 240, Y: 160}, Pressed: true}, m.ReadPointer())
	assert.Equal(t, ui.PointerData{Point: ui.Point{X: 240, Y: 160}, Pressed: false}, m.ReadPointer())
}

func TestMouseState_HeldPress(t *testing.T) {
	m := NewMouseState()

	m.handle(mouseButton(sdl.PRESSED, 10, 20))
	assert.True(t, m.ReadPointer().Pressed)
	assert.True(t, m.ReadPointer().Pressed)

	m.handle(&sdl.MouseMotionEvent{X: 30, Y: 40})
	assert.Equal(t, ui.Point{X: 30, Y: 40}, m.ReadPointer().Point)

	m.handle(mouseButton(sdl.RELEASED, 30, 40))
	assert.False(t, m.ReadPointer().Pressed)
}

func TestMouseState_IgnoresOtherButtons(t *testing.T) {
	m := NewMouseState()

	m.handle(&sdl.MouseButtonEvent{Button: sdl.BUTTON_RIGHT, State: sdl.PRESSED, X: 1, Y: 1})
	assert.Equal(t, ui.PointerData{}, m.ReadPointer())
}
