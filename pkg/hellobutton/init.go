// Package hellobutton is a single-screen SDL demo: one styled button whose
// label counts clicks, driven by a millisecond tick loop until the process
// is asked to stop.
//
// The package handles SDL initialization, driver registration with the ui
// toolkit, localized label texts, configuration and shutdown signalling.
package hellobutton

import (
	"log/slog"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/internal"
)

// Options configures backend initialization.
type Options struct {
	WindowTitle   string                 // Window title
	WindowOptions internal.WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	Zoom          int32                  // Host window scale; the UI always renders at HorRes x VerRes
	FontPath      string                 // TTF file; empty uses the embedded Go Regular font
	FontSize      int                    // Point size of the UI font
	Pointer       string                 // PointerSDL or PointerEvdev
	EvdevDevice   string                 // Device node for PointerEvdev
}

var backend *Backend

// Init initializes SDL, the window with its draw buffer, the font and the
// pointer source. Any failure is returned as an *InfrastructureError and
// leaves nothing initialized.
func Init(options Options) (*Backend, error) {
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	if options.FontSize <= 0 {
		options.FontSize = constants.DefaultFontSize
	}

	window, err := internal.Init(options.WindowTitle, options.Zoom, options.WindowOptions)
	if err != nil {
		return nil, NewInfrastructureError("init_sdl", err)
	}

	if err := window.LoadFont(options.FontPath, options.FontSize); err != nil {
		internal.SDLCleanup()
		return nil, NewInfrastructureError("load_font", err)
	}

	b := &Backend{
		window: window,
		mouse:  internal.NewMouseState(),
	}

	switch options.Pointer {
	case PointerEvdev:
		p, err := internal.OpenEvdevPointer(options.EvdevDevice, constants.HorRes, constants.VerRes)
		if err != nil {
			internal.SDLCleanup()
			return nil, NewInfrastructureError("open_pointer", err)
		}
		b.pointer = p
		b.closer = p
	default:
		b.pointer = b.mouse
	}

	backend = b

	w, h := window.Resolution()
	GetLogger().Debug("Backend initialized",
		"title", options.WindowTitle,
		"width", w,
		"height", h,
		"zoom", window.Zoom,
		"pointer", options.Pointer,
		"font", options.FontPath)

	return b, nil
}

// Close releases the pointer device and all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if backend != nil {
		backend.close()
		backend = nil
	}
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
