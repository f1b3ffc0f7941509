package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is missing")
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("FETCH_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.FetchTimeout != 12*time.Second {
		t.Errorf("FetchTimeout = %v, want 12s", cfg.FetchTimeout)
	}
	if cfg.FetchMaxPages != 5 {
		t.Errorf("FetchMaxPages = %d, want 5", cfg.FetchMaxPages)
	}
	if cfg.StorageEnabled {
		t.Error("StorageEnabled = true without bucket configured")
	}
}

func TestLoadTemperatureOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("JWT_SECRET", "secret")

	tests := []struct {
		name string
		env  string
		want float32
	}{
		{"valid", "0.5", 0.5},
		{"out of range", "3.5", 0},
		{"garbage", "hot", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_TEMPERATURE", tt.env)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.TemperatureOverride != tt.want {
				t.Errorf("TemperatureOverride = %v, want %v", cfg.TemperatureOverride, tt.want)
			}
		})
	}
}
