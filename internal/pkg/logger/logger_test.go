package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		level zapcore.Level
		ok    bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"verbose", zapcore.InfoLevel, false},
	}
	for _, tc := range cases {
		level, ok := ParseLevel(tc.in)
		assert.Equal(t, tc.level, level, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestSlogAdapterPrependsComponent(t *testing.T) {
	a := &slogAdapter{component: "session"}
	args := a.with([]any{"k", 1})
	assert.Equal(t, []any{"component", "session", "k", 1}, args)

	bare := &slogAdapter{}
	assert.Equal(t, []any{"k", 1}, bare.with([]any{"k", 1}))
}
