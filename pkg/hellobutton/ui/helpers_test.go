package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFlusher struct {
	areas []Rect
	err   error
}

func (f *fakeFlusher) Flush(_ *Screen, area Rect) error {
	f.areas = append(f.areas, area)
	return f.err
}

// monoFont measures every rune as 8x16.
type monoFont struct{}

func (monoFont) Measure(text string) (int32, int32) {
	return int32(len([]rune(text))) * 8, 16
}

type fakePointer struct {
	data PointerData
}

func (p *fakePointer) ReadPointer() PointerData {
	return p.data
}

func (p *fakePointer) press(x, y int32) {
	p.data = PointerData{Point: Point{X: x, Y: y}, Pressed: true}
}

func (p *fakePointer) release() {
	p.data.Pressed = false
}

type harness struct {
	engine  *Engine
	disp    *Display
	flusher *fakeFlusher
	pointer *fakePointer
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		engine:  NewEngine(DefaultTheme()),
		flusher: &fakeFlusher{},
		pointer: &fakePointer{},
	}

	disp, err := h.engine.RegisterDisplay(DisplayDriver{
		HorRes:  480,
		VerRes:  320,
		Flusher: h.flusher,
		Font:    monoFont{},
	})
	require.NoError(t, err)
	h.disp = disp

	_, err = h.engine.RegisterPointer(h.pointer)
	require.NoError(t, err)

	return h
}

// step advances one refresh period and runs the timer handler, n times.
func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.engine.TickInc(30)
		require.NoError(t, h.engine.TimerHandler())
	}
}

// helloButton builds a centred button holding a "Hello world!" label.
func (h *harness) helloButton() (*Button, *Label) {
	btn := NewButton(h.disp.Screen())
	lbl := NewLabel(btn)
	lbl.SetText("Hello world!")
	lbl.Center()
	btn.Center()
	return btn, lbl
}

func recordEvents(c Clickable) *[]EventCode {
	codes := &[]EventCode{}
	c.AddEventHandler(EventAll, func(e *Event) {
		*codes = append(*codes, e.Code)
	})
	return codes
}
