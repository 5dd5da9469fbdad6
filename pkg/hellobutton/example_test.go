package hellobutton_test

import (
	"fmt"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton"
)

func ExampleNewMessages() {
	messages, err := hellobutton.NewMessages("de")
	if err != nil {
		panic(err)
	}

	fmt.Println(messages.Greeting())
	fmt.Println(messages.Clicked(7))
	// Output:
	// Hallo Welt!
	// geklickt: 7
}

func ExampleParseConfig() {
	cfg, err := hellobutton.ParseConfig(`
title = "Kiosk"
zoom = 2

[window]
fullscreen = true
`)
	if err != nil {
		panic(err)
	}

	opts := cfg.Options()
	fmt.Println(opts.WindowTitle, opts.Zoom, opts.WindowOptions.Fullscreen, opts.Pointer)
	// Output: Kiosk 2 true sdl
}
