package ui

import (
	"errors"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
)

// Sentinel errors returned by driver registration and the timer handler.
var (
	ErrAlreadyRegistered = errors.New("ui: driver already registered")
	ErrNoDisplay         = errors.New("ui: no display registered")
	ErrInvalidResolution = errors.New("ui: invalid resolution")
	ErrMissingCallback   = errors.New("ui: driver callback missing")
)

// Engine drives one display and one pointer device off a millisecond tick.
// It is not safe for concurrent use; all calls must come from the loop goroutine.
type Engine struct {
	tick   uint32
	styles *themeStyles
	disp   *Display
	indev  *InputDevice
}

// NewEngine creates an engine that styles new objects with theme.
func NewEngine(theme Theme) *Engine {
	return &Engine{styles: theme.build()}
}

func (e *Engine) themeStyle(kind Kind) *Style {
	return e.styles.forKind(kind)
}

// TickInc advances the engine clock by ms milliseconds. The clock wraps.
func (e *Engine) TickInc(ms uint32) {
	e.tick += ms
}

// Tick returns the engine clock in milliseconds.
func (e *Engine) Tick() uint32 {
	return e.tick
}

// RegisterDisplay registers the one display. The resolution is fixed for its lifetime.
func (e *Engine) RegisterDisplay(drv DisplayDriver) (*Display, error) {
	if e.disp != nil {
		return nil, ErrAlreadyRegistered
	}
	if drv.HorRes <= 0 || drv.VerRes <= 0 {
		return nil, ErrInvalidResolution
	}
	if drv.Flusher == nil {
		return nil, ErrMissingCallback
	}

	e.disp = newDisplay(e, drv)
	return e.disp, nil
}

// RegisterPointer registers the one pointer device on the registered display.
func (e *Engine) RegisterPointer(reader PointerReader) (*InputDevice, error) {
	if e.disp == nil {
		return nil, ErrNoDisplay
	}
	if e.indev != nil {
		return nil, ErrAlreadyRegistered
	}
	if reader == nil {
		return nil, ErrMissingCallback
	}

	e.indev = &InputDevice{
		engine: e,
		reader: reader,
	}
	return e.indev, nil
}

// Display returns the registered display, or nil.
func (e *Engine) Display() *Display {
	return e.disp
}

// InputDevice returns the registered pointer device, or nil.
func (e *Engine) InputDevice() *InputDevice {
	return e.indev
}

// TimerHandler reads the pointer on every call, then refreshes every
// RefreshPeriod if anything is invalid. It returns the flush error, if any.
func (e *Engine) TimerHandler() error {
	if e.disp == nil {
		return ErrNoDisplay
	}

	if e.indev != nil {
		e.indev.read(e.tick)
	}

	if e.tick-e.disp.lastRefresh >= constants.RefreshPeriod {
		e.disp.lastRefresh = e.tick
		return e.disp.refresh()
	}

	return nil
}
