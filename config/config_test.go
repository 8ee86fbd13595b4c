package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("default backend = %q, want %q", cfg.Backend, BackendFile)
	}
	if cfg.StorePath == "" {
		t.Error("default store path is empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLIPHUB_STORE_PATH", "/tmp/custom.json")
	t.Setenv("CLIPHUB_BACKEND", BackendMemory)
	t.Setenv("CLIPHUB_FETCH_METADATA", "false")
	t.Setenv("CLIPHUB_FETCH_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StorePath != "/tmp/custom.json" {
		t.Errorf("StorePath = %q", cfg.StorePath)
	}
	if cfg.Backend != BackendMemory {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.FetchMetadata {
		t.Error("FetchMetadata = true, want false")
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "redis" }, true},
		{"empty path", func(c *Config) { c.StorePath = "" }, true},
		{"empty path ok for memory", func(c *Config) { c.StorePath = ""; c.Backend = BackendMemory }, false},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
