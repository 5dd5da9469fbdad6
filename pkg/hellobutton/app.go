package hellobutton

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"go.uber.org/atomic"
)

// App owns everything with process lifetime: the toolkit engine, the one
// screen with its button, label and custom style, the click counter and the
// running flag.
type App struct {
	engine   *ui.Engine
	display  *ui.Display
	messages *Messages
	logger   *slog.Logger

	button *ui.Button
	label  *ui.Label
	style  ui.Style

	clicks     uint8 // wraps after 255
	running    *atomic.Bool
	tickPeriod time.Duration
}

// NewApp registers driver with engine as display and pointer, then builds
// the screen. It must be called once, before anything else touches engine.
func NewApp(engine *ui.Engine, driver Driver, messages *Messages) (*App, error) {
	a := &App{
		engine:     engine,
		messages:   messages,
		logger:     GetLogger(),
		running:    atomic.NewBool(true),
		tickPeriod: constants.TickPeriod,
	}

	if err := a.registerDrivers(driver); err != nil {
		return nil, err
	}
	a.createUI()

	return a, nil
}

func (a *App) registerDrivers(driver Driver) error {
	disp, err := a.engine.RegisterDisplay(ui.DisplayDriver{
		HorRes:  constants.HorRes,
		VerRes:  constants.VerRes,
		Flusher: driver,
		Font:    driver,
	})
	if err != nil {
		return NewInfrastructureError("register_display", err)
	}
	a.display = disp

	if _, err := a.engine.RegisterPointer(driver); err != nil {
		return NewInfrastructureError("register_pointer", err)
	}

	driver.OnQuit(a.Stop)

	a.logger.Debug("Drivers registered", "hor_res", constants.HorRes, "ver_res", constants.VerRes)
	return nil
}

func (a *App) createUI() {
	scr := a.display.Screen()
	scr.SetStyleBgColor(ui.HexToColor(0xffffff))
	scr.SetStyleTextColor(ui.HexToColor(0x000000))

	a.button = ui.NewButton(scr)
	a.label = ui.NewLabel(a.button)
	a.button.SetStyleBgColor(ui.Black())

	a.style.SetRadius(0)
	a.style.SetBgOpa(ui.OpaCover)
	a.style.SetBgColor(ui.White())
	a.style.SetOutlineWidth(2)
	a.style.SetOutlineColor(ui.Black())
	a.style.SetOutlinePad(8)
	a.style.SetShadowWidth(6)
	a.style.SetShadowColor(ui.Black())
	a.style.SetShadowOfsX(5)
	a.style.SetShadowOfsY(5)
	a.button.AddStyle(&a.style)

	a.label.SetText(a.messages.Greeting())

	a.label.Center()
	a.button.Center()

	a.button.AddEventHandler(ui.EventAll, a.handleButtonEvent)
}

// handleButtonEvent receives every button event; only a click changes state.
func (a *App) handleButtonEvent(e *ui.Event) {
	if e.Code != ui.EventClicked {
		return
	}

	a.clicks++
	a.label.SetText(a.messages.Clicked(a.clicks))

	a.logger.Debug("Button clicked", "count", a.clicks)
}

// Run drives the toolkit until Stop is called or ctx is done: advance the
// tick, run due timers and redraws, sleep one tick period. It returns once
// the running flag is observed cleared, at most one iteration later.
func (a *App) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, a.Stop)
	defer stop()

	step := uint32(a.tickPeriod / time.Millisecond)
	if step == 0 {
		step = 1
	}

	a.logger.Debug("Event loop started", "tick_period", a.tickPeriod.String())

	for a.running.Load() {
		a.engine.TickInc(step)
		if err := a.engine.TimerHandler(); err != nil {
			a.logger.Error("Timer handler failed", "error", err)
		}

		time.Sleep(a.tickPeriod)
	}

	a.logger.Debug("Event loop stopped", "clicks", a.clicks)
}

// Stop clears the running flag. It is safe to call from any goroutine and
// more than once; the flag is never set again.
func (a *App) Stop() {
	a.running.Store(false)
}

// Running reports whether the loop is still allowed to iterate.
func (a *App) Running() bool {
	return a.running.Load()
}

// Button returns the clickable the counter is bound to.
func (a *App) Button() ui.Clickable {
	return a.button
}

// Label returns the label inside the button.
func (a *App) Label() *ui.Label {
	return a.label
}

// Clicks returns the click counter.
func (a *App) Clicks() uint8 {
	return a.clicks
}

// Engine returns the toolkit engine the app was registered with.
func (a *App) Engine() *ui.Engine {
	return a.engine
}
