package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags. The window is never resizable:
// it always shows the fixed resolution, scaled by the zoom factor.
type WindowOptions struct {
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Fullscreen  bool // Fullscreen at desktop resolution, letterboxed (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
