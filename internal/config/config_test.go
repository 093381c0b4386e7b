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
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.Business.Name == "" || cfg.Business.WhatsAppNumber == "" {
		t.Fatalf("expected business defaults, got %+v", cfg.Business)
	}
	if cfg.MockDelay() != 300*time.Millisecond {
		t.Fatalf("unexpected mock delay %v", cfg.MockDelay())
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
listen_addr: ":9090"
data_dir: /tmp/shop-data
mock_delay_ms: 50
business:
  name: Side Street Bakes
  whatsapp_number: "9779800000000"
  currency: NPR
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("file value not applied: %q", cfg.ListenAddr)
	}
	if cfg.Business.Name != "Side Street Bakes" || cfg.Business.Currency != "NPR" {
		t.Fatalf("business not parsed: %+v", cfg.Business)
	}
	if cfg.MockDelay() != 50*time.Millisecond {
		t.Fatalf("unexpected delay %v", cfg.MockDelay())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`listen_addr: ":9090"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("WHATSAPP_NUMBER", "9779811111111")
	t.Setenv("MOCK_DELAY_MS", "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Fatalf("env should beat file: %q", cfg.ListenAddr)
	}
	if cfg.Business.WhatsAppNumber != "9779811111111" {
		t.Fatalf("env number not applied: %q", cfg.Business.WhatsAppNumber)
	}
	if cfg.MockDelay() != 0 {
		t.Fatalf("expected zero delay, got %v", cfg.MockDelay())
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
