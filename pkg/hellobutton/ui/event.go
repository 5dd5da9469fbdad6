package ui

// EventCode identifies what happened to an object.
type EventCode int

const (
	EventAll               EventCode = iota // Handler filter matching every code; never sent
	EventPressed                            // Pointer went down on the object
	EventPressing                           // Pointer is still down on the object (each read)
	EventPressLost                          // Pointer slid off the object while pressed
	EventShortClicked                       // Released before the long press time
	EventLongPressed                        // Held for LongPressTime
	EventLongPressedRepeat                  // Held; fires every LongPressRepeatTime after LongPressed
	EventClicked                            // Released on the object, long pressed or not
	EventReleased                           // Pointer went up on the object
)

func (c EventCode) String() string {
	switch c {
	case EventAll:
		return "all"
	case EventPressed:
		return "pressed"
	case EventPressing:
		return "pressing"
	case EventPressLost:
		return "press_lost"
	case EventShortClicked:
		return "short_clicked"
	case EventLongPressed:
		return "long_pressed"
	case EventLongPressedRepeat:
		return "long_pressed_repeat"
	case EventClicked:
		return "clicked"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event is passed to handlers. Target is the object the event was sent to.
type Event struct {
	Code   EventCode
	Target *Object
	Point  Point
}

// EventHandler receives events for the codes it was registered with.
type EventHandler func(e *Event)

type handlerEntry struct {
	filter  EventCode
	handler EventHandler
}

// Clickable is anything that accepts pointer event handlers.
type Clickable interface {
	Widget
	AddEventHandler(filter EventCode, handler EventHandler)
}
