package logger

import (
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldProvider, "postgresql", FieldAttempt, 2)
	if m[FieldProvider] != "postgresql" {
		t.Errorf("expected provider field, got %v", m)
	}
	if m[FieldAttempt] != 2 {
		t.Errorf("expected attempt field, got %v", m)
	}
}

func TestFieldsOddArguments(t *testing.T) {
	m := Fields("lonely")
	if len(m) != 0 {
		t.Errorf("expected empty map for odd arguments, got %v", m)
	}
}

func TestRegistryGetFallsBackToComponent(t *testing.T) {
	l := Get("engine.loader")
	if l == nil {
		t.Fatal("expected non-nil logger for unregistered name")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	own := NewDefault("enginekit")
	Register("custom", own)
	if Get("custom") != own {
		t.Error("expected registered logger to be returned")
	}
}

func TestWithProvider(t *testing.T) {
	l := NewDefault("enginekit").WithProvider("mysql")
	if l == nil {
		t.Fatal("expected non-nil provider-scoped logger")
	}
}
