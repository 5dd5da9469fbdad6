package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 5}

	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 14, Y: 24}))
	assert.False(t, r.Contains(Point{X: 15, Y: 20}), "right edge is exclusive")
	assert.False(t, r.Contains(Point{X: 10, Y: 25}), "bottom edge is exclusive")
	assert.False(t, Rect{}.Contains(Point{}))
}

func TestRect_Union(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 20, W: 10, H: 5}

	assert.Equal(t, Rect{X: 0, Y: 0, W: 15, H: 25}, a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, b, Rect{}.Union(b))
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, a.Intersect(Rect{X: 5, Y: 5, W: 20, H: 20}))
	assert.True(t, a.Intersect(Rect{X: 10, Y: 0, W: 5, H: 5}).IsEmpty())
}

func TestRect_ExpandOffset(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 4, H: 4}

	assert.Equal(t, Rect{X: 8, Y: 8, W: 8, H: 8}, r.Expand(2))
	assert.Equal(t, Rect{X: 13, Y: 7, W: 4, H: 4}, r.Offset(3, -3))
}

func TestHexToColor(t *testing.T) {
	assert.Equal(t, Color{R: 0x77, G: 0x44, B: 0xBB, A: 0xFF}, HexToColor(0x7744BB))
	assert.Equal(t, Color{A: 0xFF}, Black())
	assert.Equal(t, Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, White())
}
