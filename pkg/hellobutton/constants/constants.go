// Package constants defines shared constants and configuration values
// used throughout hellobutton.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// ConfigPathEnvVar names the environment variable holding the config file path.
// The -config flag takes precedence.
const ConfigPathEnvVar = "HELLOBUTTON_CONFIG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Display resolution. The window always renders at this logical size;
// Zoom only scales the host window.
const (
	HorRes int32 = 480
	VerRes int32 = 320

	// DrawBufferSize is the number of pixels in the single draw buffer.
	DrawBufferSize = int(HorRes) * int(VerRes)
)

// Toolkit timing, all in milliseconds of engine tick.
const (
	RefreshPeriod       uint32 = 30  // Minimum interval between display refreshes
	LongPressTime       uint32 = 400 // Hold time before LongPressed fires
	LongPressRepeatTime uint32 = 100 // Interval between LongPressedRepeat events
)

// TickPeriod is how long the run loop sleeps per iteration. The engine tick
// advances by the same amount in milliseconds.
const TickPeriod = 1 * time.Millisecond

// Defaults applied when no config file overrides them.
const (
	DefaultTitle       = "hellobutton"
	DefaultLocale      = "en"
	DefaultFontSize    = 16
	DefaultZoom        = 1
	DefaultPointer     = "sdl"
	DefaultEvdevDevice = "/dev/input/event0"
	DefaultLogLevel    = "info"
)

// Theme colors of the default theme.
const (
	ThemePrimaryHex   uint32 = 0x7744BB
	ThemeSecondaryHex uint32 = 0x14143C
)
