package ui

// Color is a straight-alpha RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Opacity values.
const (
	OpaTransp uint8 = 0
	OpaCover  uint8 = 255
)

// HexToColor converts 0xRRGGBB to an opaque Color.
func HexToColor(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// White returns opaque white.
func White() Color {
	return HexToColor(0xFFFFFF)
}

// Black returns opaque black.
func Black() Color {
	return HexToColor(0x000000)
}
