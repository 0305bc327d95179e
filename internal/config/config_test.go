package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("default address = %q", cfg.Address())
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("default model = %q", cfg.Gemini.Model)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path should be set")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  host: 127.0.0.1
  port: 9090
gemini:
  api_key: test-key
  model: gemini-2.0-flash
database:
  path: /tmp/test.db
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Address() != "127.0.0.1:9090" {
		t.Errorf("address = %q", cfg.Address())
	}
	if cfg.Gemini.APIKey != "test-key" || cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
}
