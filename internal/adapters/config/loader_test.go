package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/hoard/internal/adapters/config"
	"go.trai.ch/hoard/internal/core/domain"
)

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
organization: "com.example"
platform: "2.3"
local:
  dir: /tmp/hoard-local
global:
  dir: /tmp/hoard-global
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hoard.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	settings, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Organization != "com.example" {
		t.Errorf("expected organization com.example, got %s", settings.Organization)
	}
	if settings.Platform != "2.3" {
		t.Errorf("expected platform 2.3, got %s", settings.Platform)
	}
	if settings.LocalDir != "/tmp/hoard-local" {
		t.Errorf("expected local dir /tmp/hoard-local, got %s", settings.LocalDir)
	}
	if settings.GlobalDir != "/tmp/hoard-global" {
		t.Errorf("expected global dir /tmp/hoard-global, got %s", settings.GlobalDir)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "hoard.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Organization == "" || settings.Platform == "" {
		t.Errorf("expected default identity coordinates, got %+v", settings)
	}
	if settings.LocalDir == "" || settings.GlobalDir == "" {
		t.Errorf("expected default cache dirs, got %+v", settings)
	}
	if settings.LocalDir == settings.GlobalDir {
		t.Errorf("expected distinct tier dirs, got %s twice", settings.LocalDir)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	content := `
version: "1"
organization: "com.example"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hoard.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	settings, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Organization != "com.example" {
		t.Errorf("expected organization override, got %s", settings.Organization)
	}
	if settings.Platform == "" || settings.LocalDir == "" {
		t.Errorf("expected defaults for omitted fields, got %+v", settings)
	}
}

func TestLoad_ParseError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hoard.yaml")
	if err := os.WriteFile(configPath, []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := config.Load(configPath)
	if !errors.Is(err, domain.ErrConfigParseFailed) {
		t.Fatalf("expected ErrConfigParseFailed, got: %v", err)
	}
}
