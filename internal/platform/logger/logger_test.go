// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/phrazzld/deckpush/internal/config"
	"github.com/phrazzld/deckpush/internal/platform/logger"
)

func TestValidLogLevelParsing(t *testing.T) {
	testCases := []struct {
		name      string
		logLevel  string
		wantDebug bool
		wantInfo  bool
	}{
		{
			name:      "debug level",
			logLevel:  "debug",
			wantDebug: true,
			wantInfo:  true,
		},
		{
			name:      "info level",
			logLevel:  "info",
			wantDebug: false,
			wantInfo:  true,
		},
		{
			name:      "warn level",
			logLevel:  "warn",
			wantDebug: false,
			wantInfo:  false,
		},
		{
			name:      "error level",
			logLevel:  "error",
			wantDebug: false,
			wantInfo:  false,
		},
		{
			name:      "case insensitive - DEBUG",
			logLevel:  "DEBUG",
			wantDebug: true,
			wantInfo:  true,
		},
	}

	ctx := context.Background()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.LogConfig{
				Level:  tc.logLevel,
				Format: "text",
			}

			log := logger.Setup(cfg)

			if log == nil {
				t.Fatal("Setup returned a nil logger")
			}

			if got := log.Enabled(ctx, slog.LevelDebug); got != tc.wantDebug {
				t.Errorf("Enabled(debug) = %v, want %v", got, tc.wantDebug)
			}
			if got := log.Enabled(ctx, slog.LevelInfo); got != tc.wantInfo {
				t.Errorf("Enabled(info) = %v, want %v", got, tc.wantInfo)
			}
			if !log.Enabled(ctx, slog.LevelError) {
				t.Error("Enabled(error) = false, want true at every level")
			}
		})
	}
}

func TestFormatSelection(t *testing.T) {
	log := logger.Setup(config.LogConfig{Level: "info", Format: "json"})
	if _, ok := log.Handler().(*slog.JSONHandler); !ok {
		t.Errorf("Expected JSON handler, got %T", log.Handler())
	}

	log = logger.Setup(config.LogConfig{Level: "info", Format: "text"})
	if _, ok := log.Handler().(*slog.TextHandler); !ok {
		t.Errorf("Expected text handler, got %T", log.Handler())
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	log := logger.Setup(config.LogConfig{Level: "warn", Format: "text"})
	if log == nil {
		t.Fatal("Setup returned a nil logger")
	}

	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("Expected default logger to suppress info records at warn level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelWarn) {
		t.Error("Expected default logger to emit warn records")
	}
}

// TestInvalidLogLevelParsing tests that an invalid log level falls back to
// info and logs a warning to stderr.
func TestInvalidLogLevelParsing(t *testing.T) {
	// Redirect stderr to capture the warning
	origStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stderr = w

	cfg := config.LogConfig{
		Level:  "invalid_level",
		Format: "text",
	}

	log := logger.Setup(cfg)

	// Restore stderr before assertions
	os.Stderr = origStderr
	if err := w.Close(); err != nil {
		t.Logf("Failed to close stderr writer: %v", err)
	}

	stderrBuf := new(bytes.Buffer)
	if _, err := io.Copy(stderrBuf, r); err != nil {
		t.Logf("Failed to read from stderr pipe: %v", err)
	}
	stderrOutput := stderrBuf.String()

	if log == nil {
		t.Fatal("Setup returned a nil logger for invalid log level")
	}

	if !strings.Contains(stderrOutput, "invalid log level configured") {
		t.Errorf("Expected warning message about invalid log level, got: %s", stderrOutput)
	}
	if !strings.Contains(stderrOutput, "invalid_level") {
		t.Errorf("Expected warning to include the invalid level name, got: %s", stderrOutput)
	}

	// The fallback level is info: debug suppressed, info enabled
	ctx := context.Background()
	if log.Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected fallback logger to suppress debug records")
	}
	if !log.Enabled(ctx, slog.LevelInfo) {
		t.Error("Expected fallback logger to emit info records")
	}
}
