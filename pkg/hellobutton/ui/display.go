package ui

import "fmt"

// Flusher draws the invalidated area of a screen and pushes it to the output.
// It is supplied by the backend and called from TimerHandler.
type Flusher interface {
	Flush(scr *Screen, area Rect) error
}

// Font measures single-line text in pixels.
type Font interface {
	Measure(text string) (w, h int32)
}

// DisplayDriver describes a display to register with an Engine.
type DisplayDriver struct {
	HorRes  int32
	VerRes  int32
	Flusher Flusher
	Font    Font
}

// Display is a registered output with a single screen of fixed resolution.
type Display struct {
	engine *Engine
	drv    DisplayDriver
	screen *Screen

	invalid     Rect
	layoutDirty bool
	lastRefresh uint32
}

func newDisplay(e *Engine, drv DisplayDriver) *Display {
	d := &Display{
		engine:      e,
		drv:         drv,
		lastRefresh: e.tick,
	}

	scr := &Screen{}
	scr.disp = d
	scr.self = scr
	scr.kind = KindScreen
	scr.area = d.bounds()
	if s := e.themeStyle(KindScreen); s != nil {
		scr.styles = append(scr.styles, s)
	}
	d.screen = scr
	scr.markDirty()

	return d
}

// Resolution returns the fixed horizontal and vertical resolution.
func (d *Display) Resolution() (int32, int32) {
	return d.drv.HorRes, d.drv.VerRes
}

// Screen returns the active (and only) screen.
func (d *Display) Screen() *Screen {
	return d.screen
}

// Font returns the font the display measures text with.
func (d *Display) Font() Font {
	return d.drv.Font
}

func (d *Display) bounds() Rect {
	return Rect{W: d.drv.HorRes, H: d.drv.VerRes}
}

func (d *Display) invalidate(r Rect) {
	r = r.Intersect(d.bounds())
	if r.IsEmpty() {
		return
	}
	d.invalid = d.invalid.Union(r)
}

// Invalidated returns the area waiting to be flushed.
func (d *Display) Invalidated() Rect {
	return d.invalid
}

// RefreshNow lays out pending changes and flushes immediately,
// regardless of the refresh period.
func (d *Display) RefreshNow() error {
	d.lastRefresh = d.engine.tick
	return d.refresh()
}

func (d *Display) refresh() error {
	d.ensureLayout()

	if d.invalid.IsEmpty() {
		return nil
	}

	area := d.invalid
	d.invalid = Rect{}

	if err := d.drv.Flusher.Flush(d.screen, area); err != nil {
		return fmt.Errorf("ui: flush %dx%d+%d+%d: %w", area.W, area.H, area.X, area.Y, err)
	}
	return nil
}

func (d *Display) ensureLayout() {
	if d.layoutDirty {
		d.updateLayout()
	}
}
