package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		environment string
		debug       bool
	}{
		{"production", false},
		{"development", true},
		{"staging", true},
	}
	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			l, err := New(tt.environment)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := l.Core().Enabled(zapcore.DebugLevel); got != tt.debug {
				t.Fatalf("debug enabled = %v, want %v", got, tt.debug)
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
}
