package salam

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeout != 5000*time.Millisecond {
		t.Errorf("Expected default timeout to be 5000ms, got %v", cfg.Timeout)
	}
	if cfg.Retries != 3 {
		t.Errorf("Expected default retries to be 3, got %d", cfg.Retries)
	}
	if cfg.Debug {
		t.Error("Expected debug to be disabled by default")
	}
}

func TestVersionMetadata(t *testing.T) {
	if Version != "1.0.0" {
		t.Errorf("Expected schema version 1.0.0, got %s", Version)
	}

	info := GetVersionInfo()
	if info["version"] != Version {
		t.Errorf("Expected version info to carry %s, got %s", Version, info["version"])
	}
	if info["go_version"] == "" {
		t.Error("Expected go_version to be populated")
	}
}
