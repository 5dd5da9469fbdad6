// Command hellobutton opens a fixed-resolution window with one button whose
// label counts clicks. It runs until SIGINT, SIGTERM or the window is closed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/constants"
	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", os.Getenv(constants.ConfigPathEnvVar), "path to a TOML config file")
	flag.Parse()

	ctx, cancel := hellobutton.NotifyShutdown(context.Background(), os.Stdout)
	defer cancel()

	cfg, err := hellobutton.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	if cfg.LogPath != "" {
		hellobutton.SetLogPath(cfg.LogPath)
	}
	if constants.IsDevMode() {
		hellobutton.SetRawLogLevel("debug")
	} else {
		hellobutton.SetRawLogLevel(cfg.LogLevel)
	}
	logger := hellobutton.GetLogger()

	messages, err := hellobutton.NewMessages(cfg.Locale)
	if err != nil {
		logger.Error("Failed to load messages", "locale", cfg.Locale, "error", err)
		return 1
	}

	backend, err := hellobutton.Init(cfg.Options())
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err)
		return 1
	}
	defer hellobutton.Close()

	app, err := hellobutton.NewApp(ui.NewEngine(ui.DefaultTheme()), backend, messages)
	if err != nil {
		logger.Error("Failed to register drivers", "error", err)
		return 1
	}

	app.Run(ctx)

	return 0
}
