package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %s, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Holidays.URL == "" {
		t.Error("Holidays.URL default is empty")
	}
	if cfg.Holidays.GetCacheTTL() != 24*time.Hour {
		t.Errorf("GetCacheTTL() = %v, want 24h", cfg.Holidays.GetCacheTTL())
	}

	profile := cfg.Business.Profile()
	if profile.Timezone != "America/Bogota" {
		t.Errorf("Timezone = %s, want America/Bogota", profile.Timezone)
	}
	if profile.WorkStart != 8 || profile.LunchStart != 12 || profile.LunchEnd != 13 || profile.WorkEnd != 17 {
		t.Errorf("unexpected default working hours: %+v", profile)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	content := `server:
  listen_addr: ":9090"
holidays:
  url: "https://example.com/holidays.json"
  cache_ttl: "1h"
business:
  work_start: 9
  work_end: 18
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %s, want :9090", cfg.Server.ListenAddr)
	}
	if cfg.Holidays.URL != "https://example.com/holidays.json" {
		t.Errorf("Holidays.URL = %s", cfg.Holidays.URL)
	}
	if cfg.Holidays.GetCacheTTL() != time.Hour {
		t.Errorf("GetCacheTTL() = %v, want 1h", cfg.Holidays.GetCacheTTL())
	}
	if cfg.Business.WorkStart != 9 || cfg.Business.WorkEnd != 18 {
		t.Errorf("working hours not overridden: %+v", cfg.Business)
	}
	// keys absent from the file keep their defaults
	if cfg.Business.LunchStart != 12 || cfg.Business.LunchEnd != 13 {
		t.Errorf("lunch defaults lost: %+v", cfg.Business)
	}
}

func TestLoad_InvalidBusinessHours(t *testing.T) {
	content := `business:
  work_start: 17
  work_end: 8
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for inverted working hours, got nil")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing explicit config file, got nil")
	}
}

func TestDurationGetters_FallBackOnGarbage(t *testing.T) {
	holidays := HolidaysConfig{CacheTTL: "soon", RequestTimeout: "later"}

	if holidays.GetCacheTTL() != 24*time.Hour {
		t.Errorf("GetCacheTTL() = %v, want 24h", holidays.GetCacheTTL())
	}
	if holidays.GetRequestTimeout() != 10*time.Second {
		t.Errorf("GetRequestTimeout() = %v, want 10s", holidays.GetRequestTimeout())
	}

	server := ServerConfig{ShutdownTimeout: "whenever"}
	if server.GetShutdownTimeout() != 10*time.Second {
		t.Errorf("GetShutdownTimeout() = %v, want 10s", server.GetShutdownTimeout())
	}
}
