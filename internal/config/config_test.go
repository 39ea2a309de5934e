package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.MaxUploadMB != 16 {
		t.Errorf("expected default upload cap 16 MB, got %d", cfg.MaxUploadMB)
	}
	if got := cfg.MaxUploadBytes(); got != 16<<20 {
		t.Errorf("expected %d upload bytes, got %d", 16<<20, got)
	}
	if got := cfg.StoreTTL(); got != time.Hour {
		t.Errorf("expected default store TTL 1h, got %v", got)
	}
	if cfg.StoreCapacity != 100 {
		t.Errorf("expected default store capacity 100, got %d", cfg.StoreCapacity)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DOC_COMPARER_PORT", "9090")
	t.Setenv("DOC_COMPARER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "DOC_COMPARER_PORT", "0"},
		{"negative upload cap", "DOC_COMPARER_MAX_UPLOAD_MB", "-1"},
		{"unknown log level", "DOC_COMPARER_LOG_LEVEL", "noisy"},
		{"zero ttl", "DOC_COMPARER_STORE_TTL_MINUTES", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected validation error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
