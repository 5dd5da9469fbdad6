package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_CenteredButtonSizedToLabel(t *testing.T) {
	h := newHarness(t)
	btn, lbl := h.helloButton()

	require.NoError(t, h.disp.RefreshNow())

	// 12 runes * 8 = 96 wide, plus 16 horizontal and 10 vertical theme padding.
	assert.Equal(t, Rect{X: 176, Y: 142, W: 128, H: 36}, btn.Area())
	assert.Equal(t, Rect{X: 192, Y: 152, W: 96, H: 16}, lbl.Area())
}

func TestLayout_ResizesWithText(t *testing.T) {
	h := newHarness(t)
	btn, lbl := h.helloButton()
	require.NoError(t, h.disp.RefreshNow())

	lbl.SetText("clicked: 1")
	require.NoError(t, h.disp.RefreshNow())

	// 10 runes * 8 = 80 wide.
	assert.Equal(t, Rect{X: 184, Y: 142, W: 112, H: 36}, btn.Area())
}

func TestLayout_DefaultAlignIsTopLeft(t *testing.T) {
	h := newHarness(t)
	btn := NewButton(h.disp.Screen())
	btn.SetSize(50, 20)

	require.NoError(t, h.disp.RefreshNow())
	assert.Equal(t, Rect{W: 50, H: 20}, btn.Area())
}

func TestObject_Tree(t *testing.T) {
	h := newHarness(t)
	btn, lbl := h.helloButton()

	scr := h.disp.Screen()
	assert.Equal(t, 1, scr.ChildCount())
	assert.Same(t, &btn.Object, scr.Child(0))
	assert.Same(t, &lbl.Object, btn.Child(0))
	assert.Nil(t, btn.Child(1))
	assert.Same(t, &btn.Object, lbl.Parent())

	assert.Equal(t, KindButton, btn.Kind())
	assert.Equal(t, Widget(lbl), lbl.Widget())
	assert.Equal(t, "Hello world!", lbl.Text())
}

func TestLabel_SetTextf(t *testing.T) {
	h := newHarness(t)
	_, lbl := h.helloButton()

	lbl.SetTextf("clicked: %d", uint8(7))
	assert.Equal(t, "clicked: 7", lbl.Text())
}
