package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for raw, want := range cases {
		got, ok := ParseLogLevel(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	level, ok := ParseLogLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, level)
}
