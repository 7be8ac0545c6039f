package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		log, err := New(tt.level)
		if err != nil {
			t.Fatalf("New(%q): %v", tt.level, err)
		}
		if !log.Core().Enabled(tt.want) {
			t.Fatalf("New(%q): level %s disabled", tt.level, tt.want)
		}
		if tt.want > zapcore.DebugLevel && log.Core().Enabled(tt.want-1) {
			t.Fatalf("New(%q): level %s enabled", tt.level, tt.want-1)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse log level:") {
		t.Fatalf("expected parse log level prefix, got %v", err)
	}
}
