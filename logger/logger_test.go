package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			verbosity:  0,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			verbosity:  0,
		},
		{
			name:       "Console output at debug verbosity",
			jsonOutput: false,
			verbosity:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput, tt.verbosity); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}

			if Logger == nil {
				t.Error("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			// Cleanup
			Cleanup()
			Logger = nil
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestHelpersWithNilLogger(t *testing.T) {
	Logger = nil
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("logging helpers panicked with nil logger: %v", r)
		}
		Logger = nil
	}()

	Debugw("debug", "k", "v")
	Infow("info", "k", "v")
	Warnw("warn", "k", "v")
	Errorw("error", "k", "v")
	Cleanup()
}
