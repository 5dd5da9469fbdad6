//go:build !linux

package internal

import (
	"errors"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
)

var errEvdevUnsupported = errors.New("evdev pointer is only available on linux")

// EvdevPointer is unavailable off Linux.
type EvdevPointer struct{}

func OpenEvdevPointer(path string, horRes, verRes int32) (*EvdevPointer, error) {
	return nil, errEvdevUnsupported
}

func (p *EvdevPointer) ReadPointer() ui.PointerData {
	return ui.PointerData{}
}

func (p *EvdevPointer) Close() error {
	return nil
}
