// Package internal contains the SDL backend for hellobutton.
// This includes SDL initialization, the window and its draw buffer, fonts,
// text textures, pointer sources and logging.
// Types and functions in this package are not part of the public API.
package internal
