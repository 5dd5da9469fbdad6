package ui

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding with vertical and horizontal values.
func SymmetricPadding(vertical, horizontal int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Prop identifies a single style property.
type Prop uint32

const (
	PropRadius Prop = 1 << iota
	PropBgOpa
	PropBgColor
	PropTextColor
	PropOutlineWidth
	PropOutlineColor
	PropOutlinePad
	PropShadowWidth
	PropShadowColor
	PropShadowOfsX
	PropShadowOfsY
	PropPadding
)

// Style is a sparse set of properties. Only properties written through a
// setter take part in resolution; the zero Style sets nothing.
type Style struct {
	radius       int32
	bgOpa        uint8
	bgColor      Color
	textColor    Color
	outlineWidth int32
	outlineColor Color
	outlinePad   int32
	shadowWidth  int32
	shadowColor  Color
	shadowOfsX   int32
	shadowOfsY   int32
	padding      Padding

	set Prop
}

// Has reports whether the property has been set on this style.
func (s *Style) Has(p Prop) bool {
	return s.set&p != 0
}

// Reset clears every property.
func (s *Style) Reset() {
	*s = Style{}
}

func (s *Style) SetRadius(v int32) { s.radius = v; s.set |= PropRadius }
func (s *Style) SetBgOpa(v uint8) { s.bgOpa = v; s.set |= PropBgOpa }
func (s *Style) SetBgColor(v Color) { s.bgColor = v; s.set |= PropBgColor }
func (s *Style) SetTextColor(v Color) { s.textColor = v; s.set |= PropTextColor }
func (s *Style) SetOutlineWidth(v int32) { s.outlineWidth = v; s.set |= PropOutlineWidth }
func (s *Style) SetOutlineColor(v Color) { s.outlineColor = v; s.set |= PropOutlineColor }
func (s *Style) SetOutlinePad(v int32) { s.outlinePad = v; s.set |= PropOutlinePad }
func (s *Style) SetShadowWidth(v int32) { s.shadowWidth = v; s.set |= PropShadowWidth }
func (s *Style) SetShadowColor(v Color) { s.shadowColor = v; s.set |= PropShadowColor }
func (s *Style) SetShadowOfsX(v int32) { s.shadowOfsX = v; s.set |= PropShadowOfsX }
func (s *Style) SetShadowOfsY(v int32) { s.shadowOfsY = v; s.set |= PropShadowOfsY }
func (s *Style) SetPadding(v Padding) { s.padding = v; s.set |= PropPadding }

// Resolved is the effective value of every property for one object.
type Resolved struct {
	Radius       int32
	BgOpa        uint8
	BgColor      Color
	TextColor    Color
	OutlineWidth int32
	OutlineColor Color
	OutlinePad   int32
	ShadowWidth  int32
	ShadowColor  Color
	ShadowOfsX   int32
	ShadowOfsY   int32
	Padding      Padding
}

func defaultResolved() Resolved {
	return Resolved{
		BgOpa:        OpaTransp,
		BgColor:      White(),
		TextColor:    Black(),
		OutlineColor: Black(),
		ShadowColor:  Black(),
	}
}

// apply copies the properties set on s over r and returns which ones it wrote.
func (r *Resolved) apply(s *Style) Prop {
	if s.Has(PropRadius) {
		r.Radius = s.radius
	}
	if s.Has(PropBgOpa) {
		r.BgOpa = s.bgOpa
	}
	if s.Has(PropBgColor) {
		r.BgColor = s.bgColor
	}
	if s.Has(PropTextColor) {
		r.TextColor = s.textColor
	}
	if s.Has(PropOutlineWidth) {
		r.OutlineWidth = s.outlineWidth
	}
	if s.Has(PropOutlineColor) {
		r.OutlineColor = s.outlineColor
	}
	if s.Has(PropOutlinePad) {
		r.OutlinePad = s.outlinePad
	}
	if s.Has(PropShadowWidth) {
		r.ShadowWidth = s.shadowWidth
	}
	if s.Has(PropShadowColor) {
		r.ShadowColor = s.shadowColor
	}
	if s.Has(PropShadowOfsX) {
		r.ShadowOfsX = s.shadowOfsX
	}
	if s.Has(PropShadowOfsY) {
		r.ShadowOfsY = s.shadowOfsY
	}
	if s.Has(PropPadding) {
		r.Padding = s.padding
	}
	return s.set
}

// OutlineArea returns the outer bounds of the outline drawn around area,
// or area itself when there is no outline.
func (r Resolved) OutlineArea(area Rect) Rect {
	if r.OutlineWidth <= 0 {
		return area
	}
	return area.Expand(r.OutlinePad + r.OutlineWidth)
}

// ShadowArea returns the bounds of the shadow cast by area, or an empty rect.
func (r Resolved) ShadowArea(area Rect) Rect {
	if r.ShadowWidth <= 0 {
		return Rect{}
	}
	return area.Offset(r.ShadowOfsX, r.ShadowOfsY).Expand(r.ShadowWidth)
}

// DrawArea returns everything the object may paint: body, outline and shadow.
func (r Resolved) DrawArea(area Rect) Rect {
	return area.Union(r.OutlineArea(area)).Union(r.ShadowArea(area))
}
