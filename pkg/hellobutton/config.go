package hellobutton

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/internal"
	"github.com/BurntSushi/toml"
)

// Pointer backends.
const (
	PointerSDL   = "sdl"   // Mouse through SDL window events
	PointerEvdev = "evdev" // Touchscreen or mouse read from /dev/input (Linux only)
)

// Config is the optional TOML configuration. The display resolution is not
// configurable; Zoom only scales the host window.
type Config struct {
	Title       string       `toml:"title"`
	Locale      string       `toml:"locale"`
	FontPath    string       `toml:"font_path"`
	FontSize    int          `toml:"font_size"`
	Zoom        int          `toml:"zoom"`
	Pointer     string       `toml:"pointer"`
	EvdevDevice string       `toml:"evdev_device"`
	LogPath     string       `toml:"log_path"`
	LogLevel    string       `toml:"log_level"`
	Window      WindowConfig `toml:"window"`
}

// WindowConfig maps onto SDL window flags.
type WindowConfig struct {
	Borderless  bool `toml:"borderless"`
	AlwaysOnTop bool `toml:"always_on_top"`
	Fullscreen  bool `toml:"fullscreen"`
	Hidden      bool `toml:"hidden"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:       constants.DefaultTitle,
		Locale:      constants.DefaultLocale,
		FontSize:    constants.DefaultFontSize,
		Zoom:        constants.DefaultZoom,
		Pointer:     constants.DefaultPointer,
		EvdevDevice: constants.DefaultEvdevDevice,
		LogLevel:    constants.DefaultLogLevel,
	}
}

// LoadConfig reads the TOML file at path over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return finishConfig(cfg, md)
}

// ParseConfig decodes TOML text over the defaults.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Zoom < 1 {
		return fmt.Errorf("%w: zoom must be at least 1, got %d", ErrInvalidConfig, c.Zoom)
	}
	if c.FontSize < 1 {
		return fmt.Errorf("%w: font_size must be at least 1, got %d", ErrInvalidConfig, c.FontSize)
	}

	switch c.Pointer {
	case PointerSDL:
	case PointerEvdev:
		if c.EvdevDevice == "" {
			return fmt.Errorf("%w: evdev pointer needs evdev_device", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown pointer %q", ErrInvalidConfig, c.Pointer)
	}

	if _, ok := internal.ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// Options converts the configuration into Init options.
func (c Config) Options() Options {
	return Options{
		WindowTitle: c.Title,
		WindowOptions: internal.WindowOptions{
			Borderless:  c.Window.Borderless,
			AlwaysOnTop: c.Window.AlwaysOnTop,
			Fullscreen:  c.Window.Fullscreen,
			Hidden:      c.Window.Hidden,
		},
		Zoom:        int32(c.Zoom),
		FontPath:    c.FontPath,
		FontSize:    c.FontSize,
		Pointer:     c.Pointer,
		EvdevDevice: c.EvdevDevice,
	}
}
