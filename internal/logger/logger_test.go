package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.Info("packed", "width", 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "packed", entry["msg"])
	assert.Equal(t, float64(12), entry["width"])
}

func TestNewFormatText(t *testing.T) {
	var buf bytes.Buffer
	log := NewFormat("text", "info", &buf)
	log.Info("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(NewText("warn", &buf))
	defer SetDefault(NewText("info", &bytes.Buffer{}))

	Info("hidden")
	Warn("shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "shown"))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
