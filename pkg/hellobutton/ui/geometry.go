package ui

// Point is a position in display coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned area. A Rect with a non-positive width or height is empty.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}

// IsEmpty reports whether the rect covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return !r.IsEmpty() && p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Union returns the smallest rect covering both r and o. Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}

	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)

	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Intersect returns the overlap of r and o, or an empty rect.
func (r Rect) Intersect(o Rect) Rect {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Expand grows the rect by n on every side. Negative n shrinks it.
func (r Rect) Expand(n int32) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Offset moves the rect by dx, dy.
func (r Rect) Offset(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
