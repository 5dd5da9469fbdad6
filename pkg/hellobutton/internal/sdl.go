package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL video and ttf and creates the window. Every failure is returned.
func Init(title string, zoom int32, winOpts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	w, err := initWindow(title, zoom, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}
	window = w

	return window, nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
