package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

const iconSize = 64

// iconSVG is a black button with a white bar, matching the screen.
const iconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
  <rect x="10" y="10" width="48" height="48" fill="#000000"/>
  <rect x="4" y="4" width="48" height="48" fill="#000000" stroke="#000000" stroke-width="2"/>
  <rect x="6" y="6" width="44" height="44" fill="#ffffff"/>
  <rect x="10" y="10" width="36" height="36" fill="#000000"/>
  <rect x="16" y="25" width="24" height="6" fill="#ffffff"/>
</svg>`

// rasterizeIcon renders svg into a size x size RGBA image.
func rasterizeIcon(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse icon: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func (window *Window) setIcon() error {
	img, err := rasterizeIcon(iconSVG, iconSize)
	if err != nil {
		return err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, iconSize, iconSize, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return fmt.Errorf("lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := iconSize * 4
	for y := 0; y < iconSize; y++ {
		copy(pixels[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	window.Window.SetIcon(surface)
	return nil
}
