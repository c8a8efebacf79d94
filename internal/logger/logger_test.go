package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]*zapcore.Level{
		"debug":   levelPtr(zapcore.DebugLevel),
		"info":    levelPtr(zapcore.InfoLevel),
		"warn":    levelPtr(zapcore.WarnLevel),
		"error":   levelPtr(zapcore.ErrorLevel),
		"verbose": nil,
		"":        nil,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, parseLevel(in))
		})
	}
}

func TestNew(t *testing.T) {
	for _, pretty := range []bool{true, false} {
		l, err := New("debug", pretty)
		require.NoError(t, err)
		l.Info("hello", String("k", "v"), Int("n", 1), Uint("id", 2))
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("discarded", Error(assert.AnError))
	assert.NoError(t, l.Sync())
}

func TestLoggerImpl_StructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l Logger = &loggerImpl{base: zap.New(core)}

	l.Debug("d")
	l.Info("bookmark added", Uint("id", 3), String("category", "news"))
	l.Warn("w", Int("n", 2))
	l.Error("export failed", Error(assert.AnError))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, map[string]any{"id": uint64(3), "category": "news"}, entries[1].ContextMap())
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, assert.AnError.Error(), entries[3].ContextMap()["error"])
}

func levelPtr(l zapcore.Level) *zapcore.Level { return &l }
