package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_SetsLevel(t *testing.T) {
	lg, err := New("debug", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lg.GetLevel() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", lg.GetLevel())
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := New("shouting", ""); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
