//go:build linux

package internal

import (
	"fmt"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// EvdevPointer reads a touchscreen or mouse straight from /dev/input.
// A goroutine blocks on the device and publishes the latest state;
// ReadPointer never blocks.
type EvdevPointer struct {
	dev    *evdev.InputDevice
	horRes int32
	verRes int32
	xRange axisRange
	yRange axisRange

	x       atomic.Int32
	y       atomic.Int32
	pressed atomic.Bool
	closed  atomic.Bool
}

// OpenEvdevPointer opens path and starts reading it.
func OpenEvdevPointer(path string, horRes, verRes int32) (*EvdevPointer, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evdev %s: %w", path, err)
	}

	p := &EvdevPointer{
		dev:    dev,
		horRes: horRes,
		verRes: verRes,
		xRange: axisRange{min: 0, max: horRes - 1},
		yRange: axisRange{min: 0, max: verRes - 1},
	}

	if infos, err := dev.AbsInfos(); err == nil {
		if info, ok := infos[evdev.ABS_X]; ok {
			p.xRange = axisRange{min: info.Minimum, max: info.Maximum}
		}
		if info, ok := infos[evdev.ABS_Y]; ok {
			p.yRange = axisRange{min: info.Minimum, max: info.Maximum}
		}
	}

	name, _ := dev.Name()
	GetInternalLogger().Debug("Opened evdev pointer", "path", path, "name", name,
		"x_min", p.xRange.min, "x_max", p.xRange.max, "y_min", p.yRange.min, "y_max", p.yRange.max)

	go p.run()

	return p, nil
}

func (p *EvdevPointer) run() {
	for {
		ev, err := p.dev.ReadOne()
		if err != nil {
			if !p.closed.Load() {
				GetInternalLogger().Error("evdev read failed", "error", err)
			}
			return
		}
		p.handle(ev)
	}
}

func (p *EvdevPointer) handle(ev *evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			p.x.Store(scaleAxis(ev.Value, p.xRange, p.horRes))
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			p.y.Store(scaleAxis(ev.Value, p.yRange, p.verRes))
		}
	case evdev.EV_REL:
		switch ev.Code {
		case evdev.REL_X:
			p.x.Store(clampAxis(p.x.Load()+ev.Value, p.horRes))
		case evdev.REL_Y:
			p.y.Store(clampAxis(p.y.Load()+ev.Value, p.verRes))
		}
	case evdev.EV_KEY:
		switch ev.Code {
		case evdev.BTN_TOUCH, evdev.BTN_LEFT:
			p.pressed.Store(ev.Value != 0)
		}
	}
}

func (p *EvdevPointer) ReadPointer() ui.PointerData {
	return ui.PointerData{
		Point:   ui.Point{X: p.x.Load(), Y: p.y.Load()},
		Pressed: p.pressed.Load(),
	}
}

// Close releases the device; the blocked read then fails and the reader goroutine exits.
func (p *EvdevPointer) Close() error {
	p.closed.Store(true)
	return p.dev.Close()
}
