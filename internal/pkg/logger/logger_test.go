package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitAndLevelChange(t *testing.T) {
	if err := Init("info", "console"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := GetLevel(); got != zapcore.InfoLevel {
		t.Fatalf("GetLevel() = %v, want info", got)
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	if got := GetLevel(); got != zapcore.DebugLevel {
		t.Fatalf("GetLevel() = %v, want debug after SetLevel", got)
	}

	if L() == nil {
		t.Fatal("L() returned nil after Init")
	}
	if err := Sync(); err != nil {
		// Sync on a console logger writing to stderr may fail on some
		// platforms; only hard-fail when the logger itself is broken.
		t.Logf("Sync() returned %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	if err := Init("info", "console"); err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	// A second Init must not replace the logger or error out.
	if err := Init("error", "json"); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
}
