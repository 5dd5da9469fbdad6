package ui

func (d *Display) updateLayout() {
	d.layoutDirty = false

	scr := &d.screen.Object
	measure(scr)
	scr.area = d.bounds()
	d.place(scr)
}

// measure sizes the subtree bottom-up. Screens keep the display size.
func measure(o *Object) {
	for _, c := range o.children {
		measure(c)
	}

	if o.kind == KindScreen {
		return
	}

	w, h := o.width, o.height
	if w == 0 || h == 0 {
		var cw, ch int32
		if o.content != nil {
			cw, ch = o.content()
		}
		pad := o.Style().Padding
		if w == 0 {
			w = cw + pad.Left + pad.Right
		}
		if h == 0 {
			h = ch + pad.Top + pad.Bottom
		}
	}

	o.area.W, o.area.H = w, h
}

// place positions children top-down and invalidates whatever moved or changed.
func (d *Display) place(o *Object) {
	drawArea := o.Style().DrawArea(o.area)
	if o.dirty || drawArea != o.drawn {
		d.invalidate(o.drawn)
		d.invalidate(drawArea)
		o.drawn = drawArea
		o.dirty = false
	}

	pad := o.Style().Padding
	content := Rect{
		X: o.area.X + pad.Left,
		Y: o.area.Y + pad.Top,
		W: o.area.W - pad.Left - pad.Right,
		H: o.area.H - pad.Top - pad.Bottom,
	}

	for _, c := range o.children {
		switch c.align {
		case AlignCenter:
			c.area.X = content.X + (content.W-c.area.W)/2
			c.area.Y = content.Y + (content.H-c.area.H)/2
		default:
			c.area.X = content.X
			c.area.Y = content.Y
		}
		d.place(c)
	}
}
