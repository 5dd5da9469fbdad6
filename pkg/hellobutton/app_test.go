package hellobutton

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver records flushes and serves a settable pointer; every rune is 8x16.
type fakeDriver struct {
	flushes []ui.Rect
	pointer ui.PointerData
	onQuit  func()
}

func (d *fakeDriver) Flush(_ *ui.Screen, area ui.Rect) error {
	d.flushes = append(d.flushes, area)
	return nil
}

func (d *fakeDriver) Measure(text string) (int32, int32) {
	return int32(len([]rune(text))) * 8, 16
}

func (d *fakeDriver) ReadPointer() ui.PointerData {
	return d.pointer
}

func (d *fakeDriver) OnQuit(fn func()) {
	d.onQuit = fn
}

func newTestApp(t *testing.T) (*App, *fakeDriver) {
	t.Helper()

	messages, err := NewMessages("en")
	require.NoError(t, err)

	driver := &fakeDriver{}
	app, err := NewApp(ui.NewEngine(ui.DefaultTheme()), driver, messages)
	require.NoError(t, err)

	return app, driver
}

func click(app *App) {
	app.Button().Obj().Send(ui.EventClicked, ui.Point{})
}

func TestApp_InitialLabel(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, "Hello world!", app.Label().Text())
	assert.Equal(t, uint8(0), app.Clicks())
	assert.True(t, app.Running())
}

func TestApp_ClicksUpdateLabel(t *testing.T) {
	app, _ := newTestApp(t)

	for n := 1; n <= 5; n++ {
		click(app)
		assert.Equal(t, fmt.Sprintf("clicked: %d", n), app.Label().Text())
	}
	assert.Equal(t, uint8(5), app.Clicks())
}

func TestApp_CounterWraps(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 255; i++ {
		click(app)
	}
	assert.Equal(t, "clicked: 255", app.Label().Text())

	click(app)
	assert.Equal(t, "clicked: 0", app.Label().Text())

	click(app)
	assert.Equal(t, "clicked: 1", app.Label().Text())
}

func TestApp_OtherEventsIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	for _, code := range []ui.EventCode{
		ui.EventPressed,
		ui.EventPressing,
		ui.EventPressLost,
		ui.EventShortClicked,
		ui.EventLongPressed,
		ui.EventLongPressedRepeat,
		ui.EventReleased,
	} {
		app.Button().Obj().Send(code, ui.Point{})
		assert.Equal(t, "Hello world!", app.Label().Text(), code.String())
	}
	assert.Equal(t, uint8(0), app.Clicks())
}

func TestApp_ScreenStyle(t *testing.T) {
	app, _ := newTestApp(t)

	scr := app.Engine().Display().Screen().Style()
	assert.Equal(t, ui.White(), scr.BgColor)
	assert.Equal(t, ui.Black(), scr.TextColor)

	btn := app.Button().Obj().Style()
	assert.Equal(t, ui.Black(), btn.BgColor, "local bg color wins over the custom style")
	assert.Equal(t, ui.OpaCover, btn.BgOpa)
	assert.Equal(t, int32(0), btn.Radius)
	assert.Equal(t, int32(2), btn.OutlineWidth)
	assert.Equal(t, int32(8), btn.OutlinePad)
	assert.Equal(t, int32(6), btn.ShadowWidth)
	assert.Equal(t, int32(5), btn.ShadowOfsX)
	assert.Equal(t, int32(5), btn.ShadowOfsY)

	assert.Equal(t, ui.White(), app.Label().Style().TextColor)
}

func TestApp_FixedResolution(t *testing.T) {
	app, driver := newTestApp(t)

	w, h := app.Engine().Display().Resolution()
	assert.Equal(t, int32(480), w)
	assert.Equal(t, int32(320), h)

	require.NoError(t, app.Engine().Display().RefreshNow())
	require.NotEmpty(t, driver.flushes)
	assert.Equal(t, ui.Rect{W: 480, H: 320}, driver.flushes[0])

	for i := 0; i < 3; i++ {
		click(app)
		require.NoError(t, app.Engine().Display().RefreshNow())
	}
	for _, area := range driver.flushes {
		assert.Equal(t, area, area.Intersect(ui.Rect{W: 480, H: 320}), "flushes stay on screen")
	}
}

func TestApp_PointerClick(t *testing.T) {
	app, driver := newTestApp(t)
	engine := app.Engine()

	driver.pointer = ui.PointerData{Point: ui.Point{X: 240, Y: 160}, Pressed: true}
	engine.TickInc(30)
	require.NoError(t, engine.TimerHandler())

	driver.pointer.Pressed = false
	engine.TickInc(30)
	require.NoError(t, engine.TimerHandler())

	assert.Equal(t, "clicked: 1", app.Label().Text())
}

func TestApp_RegistersOnce(t *testing.T) {
	app, _ := newTestApp(t)
	messages, err := NewMessages("en")
	require.NoError(t, err)

	_, err = NewApp(app.Engine(), &fakeDriver{}, messages)
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.True(t, errors.Is(err, ui.ErrAlreadyRegistered))
}

func TestApp_RunStops(t *testing.T) {
	app, driver := newTestApp(t)

	time.AfterFunc(50*time.Millisecond, app.Stop)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}

	assert.False(t, app.Running())
	assert.NotEmpty(t, driver.flushes, "the screen was drawn while running")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, app.Running())
}

func TestApp_StopIsFinal(t *testing.T) {
	app, _ := newTestApp(t)
	app.Stop()
	app.Stop()

	start := time.Now()
	app.Run(context.Background())

	assert.Less(t, time.Since(start), 100*time.Millisecond, "a stopped app never iterates")
	assert.False(t, app.Running())
}

func TestApp_QuitRequestStops(t *testing.T) {
	app, driver := newTestApp(t)
	require.NotNil(t, driver.onQuit)

	driver.onQuit()
	assert.False(t, app.Running())
}

func TestApp_QuietAtInfoLevel(t *testing.T) {
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	app.logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	time.AfterFunc(20*time.Millisecond, app.Stop)
	app.Run(context.Background())
	click(app)

	assert.Empty(t, buf.String(), "stdout carries only the signal line at the default level")
}
