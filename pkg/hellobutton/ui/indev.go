package ui

import "github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"

// PointerData is one sample of pointer state.
type PointerData struct {
	Point   Point
	Pressed bool
}

// PointerReader reports the current pointer state. It is polled by the
// engine on every timer handler call and must not block.
type PointerReader interface {
	ReadPointer() PointerData
}

// InputDevice turns successive pointer samples into object events.
// It tracks the pressed object and long press timing across reads.
type InputDevice struct {
	engine *Engine
	reader PointerReader

	pressed    bool
	active     *Object
	last       Point
	pressStart uint32
	lastRepeat uint32
	longSent   bool
}

// Active returns the object currently being pressed, or nil.
func (d *InputDevice) Active() *Object {
	return d.active
}

// Point returns the last pointer position read.
func (d *InputDevice) Point() Point {
	return d.last
}

func (d *InputDevice) read(tick uint32) {
	data := d.reader.ReadPointer()
	d.last = data.Point

	switch {
	case data.Pressed && !d.pressed:
		d.pressed = true
		d.press(data.Point, tick)
	case data.Pressed && d.pressed:
		d.hold(data.Point, tick)
	case !data.Pressed && d.pressed:
		d.pressed = false
		d.release(data.Point)
	}
}

func (d *InputDevice) press(p Point, tick uint32) {
	disp := d.engine.disp
	disp.ensureLayout()

	d.active = disp.screen.hitTest(p)
	if d.active == nil {
		return
	}

	d.pressStart = tick
	d.longSent = false
	d.active.Send(EventPressed, p)
}

func (d *InputDevice) hold(p Point, tick uint32) {
	obj := d.active
	if obj == nil {
		return
	}

	if !obj.area.Contains(p) {
		d.active = nil
		obj.Send(EventPressLost, p)
		return
	}

	obj.Send(EventPressing, p)

	switch {
	case !d.longSent && tick-d.pressStart >= constants.LongPressTime:
		d.longSent = true
		d.lastRepeat = tick
		obj.Send(EventLongPressed, p)
	case d.longSent && tick-d.lastRepeat >= constants.LongPressRepeatTime:
		d.lastRepeat = tick
		obj.Send(EventLongPressedRepeat, p)
	}
}

func (d *InputDevice) release(p Point) {
	obj := d.active
	d.active = nil
	if obj == nil {
		return
	}

	obj.Send(EventReleased, p)
	if !d.longSent {
		obj.Send(EventShortClicked, p)
	}
	obj.Send(EventClicked, p)
}
