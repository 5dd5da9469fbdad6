package internal

import (
	"fmt"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window, its renderer and the draw buffer the UI is
// rendered into. The buffer is allocated once at the fixed resolution.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Buffer   *sdl.Texture
	Title    string
	Zoom     int32
	Font     *Font

	textures *TextureCache
}

func initWindow(title string, zoom int32, winOpts WindowOptions) (*Window, error) {
	if zoom < 1 {
		zoom = 1
	}

	width, height := constants.HorRes*zoom, constants.VerRes*zoom

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height, "zoom", zoom)

	sdlWindow, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	var renderer *sdl.Renderer
	var lastErr error

	for _, flags := range []uint32{
		sdl.RENDERER_ACCELERATED | sdl.RENDERER_TARGETTEXTURE,
		sdl.RENDERER_SOFTWARE | sdl.RENDERER_TARGETTEXTURE,
	} {
		renderer, lastErr = sdl.CreateRenderer(sdlWindow, -1, flags)
		if lastErr == nil {
			break
		}
		GetInternalLogger().Warn("Renderer unavailable, trying next", "flags", flags, "error", lastErr)
	}

	if lastErr != nil {
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create renderer: %w", lastErr)
	}

	if err := renderer.SetLogicalSize(constants.HorRes, constants.VerRes); err != nil {
		renderer.Destroy()
		sdlWindow.Destroy()
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	buffer, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, constants.HorRes, constants.VerRes)
	if err != nil {
		renderer.Destroy()
		sdlWindow.Destroy()
		return nil, fmt.Errorf("create draw buffer: %w", err)
	}

	win := &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Buffer:   buffer,
		Title:    title,
		Zoom:     zoom,
		textures: NewTextureCache(),
	}

	if err := win.setIcon(); err != nil {
		GetInternalLogger().Warn("Failed to set window icon", "error", err)
	}

	return win, nil
}

// LoadFont opens the UI font and attaches it to the window.
func (window *Window) LoadFont(path string, size int) error {
	font, err := OpenFont(path, size)
	if err != nil {
		return err
	}
	if window.Font != nil {
		window.Font.Close()
	}
	window.Font = font
	window.textures.Destroy()
	return nil
}

func (window *Window) closeWindow() {
	window.textures.Destroy()
	if window.Font != nil {
		window.Font.Close()
		window.Font = nil
	}
	if window.Buffer != nil {
		window.Buffer.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

// Resolution returns the logical size the UI renders at.
func (window *Window) Resolution() (int32, int32) {
	return constants.HorRes, constants.VerRes
}

// Present copies the draw buffer to the window and swaps.
func (window *Window) Present() error {
	if err := window.Renderer.Copy(window.Buffer, nil, nil); err != nil {
		return fmt.Errorf("copy draw buffer: %w", err)
	}
	window.Renderer.Present()
	return nil
}

// WindowEvents is what PumpEvents saw besides pointer input.
type WindowEvents struct {
	Quit    bool // Close requested (SDL_QUIT)
	Exposed bool // Window contents need repainting
}

// PumpEvents drains the SDL event queue, feeding mouse events to mouse.
func (window *Window) PumpEvents(mouse *MouseState) WindowEvents {
	var out WindowEvents

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			out.Quit = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_EXPOSED {
				out.Exposed = true
			}
		case *sdl.MouseMotionEvent, *sdl.MouseButtonEvent:
			if mouse != nil {
				mouse.handle(e)
			}
		}
	}

	return out
}
