package membuf

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_LogAllocate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogAllocate(64, 8, 3, 0x1000, nil)
	assert.Contains(t, buf.String(), "allocate completed")
	assert.Contains(t, buf.String(), "padding=3")

	buf.Reset()
	l.WithAlignment(8).LogAllocate(64, 8, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "allocate failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogger_LogFree(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogFree(72, nil)
	assert.Contains(t, buf.String(), `"msg":"free completed"`)
	assert.Contains(t, buf.String(), `"size":72`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	l.LogAllocate(1, 1, 0, 0, errors.New("ignored"))
}

func TestNewLogger_DefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, l.Enabled(t.Context(), slog.LevelDebug))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
}
