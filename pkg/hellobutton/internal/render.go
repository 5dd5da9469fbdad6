package internal

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/veandco/go-sdl2/sdl"
)

var errNoFont = errors.New("no font loaded")

// Flush draws the screen clipped to area into the draw buffer and presents it.
func (window *Window) Flush(scr *ui.Screen, area ui.Rect) error {
	r := window.Renderer

	if err := r.SetRenderTarget(window.Buffer); err != nil {
		return fmt.Errorf("set render target: %w", err)
	}

	clip := toSDLRect(area)
	r.SetClipRect(&clip)
	r.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	drawErr := window.drawObject(&scr.Object)

	r.SetClipRect(nil)
	if err := r.SetRenderTarget(nil); err != nil {
		return fmt.Errorf("reset render target: %w", err)
	}
	if drawErr != nil {
		return drawErr
	}

	return window.Present()
}

func (window *Window) drawObject(o *ui.Object) error {
	st := o.Style()
	area := o.Area()

	if st.ShadowWidth > 0 {
		window.drawShadow(area, st)
	}

	if st.BgOpa > 0 {
		window.fillRoundRect(area, st.Radius, scaleAlpha(st.BgColor, st.BgOpa))
	}

	if st.OutlineWidth > 0 {
		window.drawOutline(area, st)
	}

	if lbl, ok := o.Widget().(*ui.Label); ok {
		if err := window.drawText(lbl.Text(), area, st.TextColor); err != nil {
			return err
		}
	}

	for _, child := range o.Children() {
		if err := window.drawObject(child); err != nil {
			return err
		}
	}
	return nil
}

// drawShadow stacks translucent rects, widest first, so the shadow darkens
// towards the body.
func (window *Window) drawShadow(area ui.Rect, st ui.Resolved) {
	base := area.Offset(st.ShadowOfsX, st.ShadowOfsY)
	steps := st.ShadowWidth

	for i := int32(0); i < steps; i++ {
		layer := base.Expand(steps - i)
		c := st.ShadowColor
		c.A = uint8(int32(c.A) / (steps + 1))
		window.fillRoundRect(layer, st.Radius+steps-i, c)
	}
	window.fillRoundRect(base, st.Radius, st.ShadowColor)
}

func (window *Window) drawOutline(area ui.Rect, st ui.Resolved) {
	outer := st.OutlineArea(area)
	w := st.OutlineWidth

	window.setDrawColor(st.OutlineColor)
	rects := []sdl.Rect{
		{X: outer.X, Y: outer.Y, W: outer.W, H: w},
		{X: outer.X, Y: outer.Y + outer.H - w, W: outer.W, H: w},
		{X: outer.X, Y: outer.Y + w, W: w, H: outer.H - 2*w},
		{X: outer.X + outer.W - w, Y: outer.Y + w, W: w, H: outer.H - 2*w},
	}
	window.Renderer.FillRects(rects)
}

// fillRoundRect fills area, cutting the corners to radius one row at a time.
func (window *Window) fillRoundRect(area ui.Rect, radius int32, c ui.Color) {
	if area.IsEmpty() || c.A == 0 {
		return
	}

	window.setDrawColor(c)

	radius = min(radius, area.W/2, area.H/2)
	if radius <= 0 {
		rect := toSDLRect(area)
		window.Renderer.FillRect(&rect)
		return
	}

	middle := sdl.Rect{X: area.X, Y: area.Y + radius, W: area.W, H: area.H - 2*radius}
	window.Renderer.FillRect(&middle)

	for row := int32(0); row < radius; row++ {
		inset := cornerInset(radius, row)
		top := sdl.Rect{X: area.X + inset, Y: area.Y + row, W: area.W - 2*inset, H: 1}
		bottom := sdl.Rect{X: area.X + inset, Y: area.Y + area.H - 1 - row, W: area.W - 2*inset, H: 1}
		window.Renderer.FillRect(&top)
		window.Renderer.FillRect(&bottom)
	}
}

// cornerInset returns how far row (0 = outermost) of a rounded corner is indented.
func cornerInset(radius, row int32) int32 {
	dy := radius - row
	dx := int32(0)
	for (dx+1)*(dx+1)+dy*dy <= radius*radius {
		dx++
	}
	return radius - dx
}

func (window *Window) drawText(text string, area ui.Rect, c ui.Color) error {
	if text == "" {
		return nil
	}
	if window.Font == nil {
		return errNoFont
	}

	key := TextKey(text, c)
	texture := window.textures.Get(key)
	if texture == nil {
		surface, err := window.Font.ttf.RenderUTF8Blended(text, toSDLColor(c))
		if err != nil {
			return fmt.Errorf("render text %q: %w", text, err)
		}
		texture, err = window.Renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return fmt.Errorf("text texture %q: %w", text, err)
		}
		window.textures.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return fmt.Errorf("query text texture: %w", err)
	}

	dst := sdl.Rect{X: area.X, Y: area.Y, W: w, H: h}
	return window.Renderer.Copy(texture, nil, &dst)
}

func (window *Window) setDrawColor(c ui.Color) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}
