package logger

import (
	"context"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level)
			if l == nil {
				t.Fatal("New() returned nil")
			}
			// Must not panic at any level
			ctx := context.Background()
			l.Debug(ctx, "debug %s", "msg")
			l.Info(ctx, "info %s", "msg")
			l.Warn(ctx, "warn %s", "msg")
			l.Error(ctx, "error %s", "msg")
		})
	}
}

func TestShouldLog(t *testing.T) {
	l := New("warn").(*implLogger)

	if l.shouldLog("info") {
		t.Error("info should not be logged at warn level")
	}
	if !l.shouldLog("warn") {
		t.Error("warn should be logged at warn level")
	}
	if !l.shouldLog("error") {
		t.Error("error should be logged at warn level")
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
	if got := FormatError(errors.New("boom")); got != "boom" {
		t.Errorf("FormatError = %q, want boom", got)
	}
}
