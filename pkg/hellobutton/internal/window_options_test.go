package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptions_ToSDLFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())

	flags := WindowOptions{Borderless: true, AlwaysOnTop: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.NotZero(t, flags&sdl.WINDOW_ALWAYS_ON_TOP)
	assert.Zero(t, flags&sdl.WINDOW_RESIZABLE, "window size is fixed")

	hidden := WindowOptions{Hidden: true}.ToSDLFlags()
	assert.Zero(t, hidden&sdl.WINDOW_SHOWN)
	assert.NotZero(t, hidden&sdl.WINDOW_HIDDEN)

	full := WindowOptions{Fullscreen: true}.ToSDLFlags()
	assert.Equal(t, uint32(sdl.WINDOW_FULLSCREEN_DESKTOP), full&sdl.WINDOW_FULLSCREEN_DESKTOP)
}
