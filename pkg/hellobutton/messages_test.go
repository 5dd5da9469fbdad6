package hellobutton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_English(t *testing.T) {
	m, err := NewMessages("en")
	require.NoError(t, err)

	assert.Equal(t, "Hello world!", m.Greeting())
	assert.Equal(t, "clicked: 0", m.Clicked(0))
	assert.Equal(t, "clicked: 1", m.Clicked(1))
	assert.Equal(t, "clicked: 255", m.Clicked(255))
}

func TestMessages_German(t *testing.T) {
	m, err := NewMessages("de")
	require.NoError(t, err)

	assert.Equal(t, "Hallo Welt!", m.Greeting())
	assert.Equal(t, "geklickt: 3", m.Clicked(3))
}

func TestMessages_FallbackToEnglish(t *testing.T) {
	m, err := NewMessages("fr")
	require.NoError(t, err)

	assert.Equal(t, "Hello world!", m.Greeting())
	assert.Equal(t, "clicked: 2", m.Clicked(2))
	assert.Equal(t, "fr", m.Tag().String())
}

func TestMessages_InvalidLocale(t *testing.T) {
	_, err := NewMessages("not a locale!")
	assert.Error(t, err)
}
