package ui

import "fmt"

// Kind is the class of an object. The theme styles objects by kind.
type Kind int

const (
	KindScreen Kind = iota
	KindButton
	KindLabel
)

// Align places an object inside its parent's content area.
type Align int

const (
	AlignTopLeft Align = iota
	AlignCenter
)

// Widget is implemented by every object type.
type Widget interface {
	Obj() *Object
}

// Object is the node shared by screens, buttons and labels.
type Object struct {
	disp     *Display
	self     Widget
	kind     Kind
	parent   *Object
	children []*Object

	area      Rect
	drawn     Rect // draw area at the last layout, for invalidation
	width     int32
	height    int32
	align     Align
	dirty     bool
	clickable bool

	local    Style
	styles   []*Style
	handlers []handlerEntry

	// content reports the intrinsic size for kinds sized by content.
	content func() (int32, int32)
}

func (o *Object) init(parent Widget, kind Kind, self Widget) {
	if parent == nil || parent.Obj() == nil || parent.Obj().disp == nil {
		panic(fmt.Sprintf("ui: %v created without a parent on a registered display", kind))
	}

	p := parent.Obj()
	o.disp = p.disp
	o.self = self
	o.kind = kind
	o.parent = p
	if s := p.disp.engine.themeStyle(kind); s != nil {
		o.styles = append(o.styles, s)
	}
	p.children = append(p.children, o)
	o.markDirty()
}

func (k Kind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindButton:
		return "button"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Obj returns the object itself, so embedding types satisfy Widget.
func (o *Object) Obj() *Object {
	return o
}

// Widget returns the typed wrapper (*Screen, *Button or *Label) owning the object.
func (o *Object) Widget() Widget {
	return o.self
}

func (o *Object) Kind() Kind {
	return o.kind
}

func (o *Object) Parent() *Object {
	return o.parent
}

// Child returns the i-th child in creation order, or nil if out of range.
func (o *Object) Child(i int) *Object {
	if i < 0 || i >= len(o.children) {
		return nil
	}
	return o.children[i]
}

func (o *Object) ChildCount() int {
	return len(o.children)
}

// Area returns the object's position and size as of the last layout.
func (o *Object) Area() Rect {
	return o.area
}

func (o *Object) Display() *Display {
	return o.disp
}

// Children returns a copy of the child list in creation (paint) order.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// Center aligns the object to the centre of its parent.
func (o *Object) Center() {
	o.align = AlignCenter
	o.markDirty()
}

// SetSize fixes the object's size. Zero in either dimension means size to content.
func (o *Object) SetSize(w, h int32) {
	o.width, o.height = w, h
	o.markDirty()
}

func (o *Object) Clickable() bool {
	return o.clickable
}

func (o *Object) SetClickable(clickable bool) {
	o.clickable = clickable
}

// AddStyle appends a shared style. Later styles take precedence over earlier ones.
func (o *Object) AddStyle(s *Style) {
	o.styles = append(o.styles, s)
	o.markDirty()
}

// RefreshStyle marks the object for redraw after a shared style it uses was modified.
func (o *Object) RefreshStyle() {
	o.markDirty()
}

func (o *Object) SetStyleBgColor(c Color) {
	o.local.SetBgColor(c)
	o.markDirty()
}

func (o *Object) SetStyleBgOpa(v uint8) {
	o.local.SetBgOpa(v)
	o.markDirty()
}

func (o *Object) SetStyleTextColor(c Color) {
	o.local.SetTextColor(c)
	o.markDirty()
}

// Style resolves every property for this object.
func (o *Object) Style() Resolved {
	r := defaultResolved()

	var set Prop
	for _, s := range o.styles {
		set |= r.apply(s)
	}
	set |= r.apply(&o.local)

	if set&PropTextColor == 0 && o.parent != nil {
		r.TextColor = o.parent.Style().TextColor
	}

	return r
}

// AddEventHandler registers handler for events matching filter. EventAll matches every code.
func (o *Object) AddEventHandler(filter EventCode, handler EventHandler) {
	o.handlers = append(o.handlers, handlerEntry{filter: filter, handler: handler})
}

// Send dispatches an event to the object's handlers in registration order.
func (o *Object) Send(code EventCode, p Point) {
	e := &Event{Code: code, Target: o, Point: p}
	for _, h := range o.handlers {
		if h.filter == EventAll || h.filter == code {
			h.handler(e)
		}
	}
}

// Invalidate schedules the object's draw area for redraw.
func (o *Object) Invalidate() {
	o.markDirty()
}

func (o *Object) markDirty() {
	o.dirty = true
	if o.disp != nil {
		o.disp.layoutDirty = true
	}
}

// hitTest returns the topmost clickable object under p within o's subtree.
func (o *Object) hitTest(p Point) *Object {
	if !o.area.Contains(p) {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if hit := o.children[i].hitTest(p); hit != nil {
			return hit
		}
	}
	if o.clickable {
		return o
	}
	return nil
}

// Screen is the root object of a display.
type Screen struct {
	Object
}

// Button is a clickable container sized to its content plus padding.
type Button struct {
	Object
}

// NewButton creates a button as the last child of parent.
func NewButton(parent Widget) *Button {
	b := &Button{}
	b.init(parent, KindButton, b)
	b.clickable = true
	b.content = b.contentSize
	return b
}

func (b *Button) contentSize() (int32, int32) {
	var w, h int32
	for _, c := range b.children {
		w = max(w, c.area.W)
		h = max(h, c.area.H)
	}
	return w, h
}

// Label displays a single line of text.
type Label struct {
	Object
	text string
}

// NewLabel creates a label as the last child of parent with the default text.
func NewLabel(parent Widget) *Label {
	l := &Label{text: "Text"}
	l.init(parent, KindLabel, l)
	l.content = l.contentSize
	return l
}

func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text and schedules relayout and redraw.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.markDirty()
}

// SetTextf formats according to format and sets the result as text.
func (l *Label) SetTextf(format string, args ...any) {
	l.SetText(fmt.Sprintf(format, args...))
}

func (l *Label) contentSize() (int32, int32) {
	font := l.disp.drv.Font
	if font == nil {
		return 0, 0
	}
	return font.Measure(l.text)
}
