package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the single UI font. It satisfies ui.Font.
type Font struct {
	ttf  *ttf.Font
	Path string // Empty for the embedded Go Regular face
	Size int
}

// OpenFont loads the TTF at path, or the embedded Go Regular face when path is empty.
func OpenFont(path string, size int) (*Font, error) {
	var (
		f   *ttf.Font
		err error
	)

	if path == "" {
		var rw *sdl.RWops
		rw, err = sdl.RWFromMem(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("embedded font: %w", err)
		}
		f, err = ttf.OpenFontRW(rw, 1, size)
	} else {
		f, err = ttf.OpenFont(path, size)
	}
	if err != nil {
		return nil, fmt.Errorf("open font %q: %w", path, err)
	}

	return &Font{ttf: f, Path: path, Size: size}, nil
}

// Measure returns the rendered size of text. Errors are logged and yield
// a zero width at the font's line height.
func (f *Font) Measure(text string) (int32, int32) {
	if text == "" {
		return 0, int32(f.ttf.Height())
	}

	w, h, err := f.ttf.SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Error("Failed to measure text", "text", text, "error", err)
		return 0, int32(f.ttf.Height())
	}
	return int32(w), int32(h)
}

func (f *Font) Close() {
	f.ttf.Close()
}
