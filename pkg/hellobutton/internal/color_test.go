package internal

import (
	"testing"

	"github.com/BrandonKowalski/hellobutton/pkg/hellobutton/ui"
	"github.com/stretchr/testify/assert"
)

func TestScaleAlpha(t *testing.T) {
	c := scaleAlpha(ui.White(), 128)
	assert.Equal(t, uint8(128), c.A)
	assert.Equal(t, uint8(255), c.R)

	assert.Equal(t, uint8(0), scaleAlpha(ui.Black(), 0).A)
}
