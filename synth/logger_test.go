package synth

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}
	logger.Debug("msg", "k", "v")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg")
	assert.Equal(t, NopLogger{}, logger.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var logger Logger = NewSlogAdapter(base)
	logger.Debug("registered declaration", "name", "Repository")
	logger.Info("synthesis complete", "declarations", 3)
	logger.Warn("cyclic schema degraded to opaque type")
	logger.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "registered declaration")
	assert.Contains(t, out, "name=Repository")
	assert.Contains(t, out, "declarations=3")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")

	buf.Reset()
	logger.With("run", "abc").Info("scoped")
	assert.Contains(t, buf.String(), "run=abc")
}

func TestNewSlogAdapterNilUsesDefault(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}
