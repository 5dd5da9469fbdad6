package internal

import (
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/veandco/go-sdl2/sdl"
)

func toSDLColor(c ui.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toSDLRect(r ui.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// scaleAlpha multiplies a color's alpha by opa/255.
func scaleAlpha(c ui.Color, opa uint8) ui.Color {
	c.A = uint8(uint16(c.A) * uint16(opa) / 255)
	return c
}
