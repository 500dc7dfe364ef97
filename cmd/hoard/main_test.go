package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hoard.yaml")
	configContent := `version: "1"
local:
  dir: ` + filepath.Join(tmpDir, "local") + `
global:
  dir: ` + filepath.Join(tmpDir, "global") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("HOARD_CONFIG", configPath)

	os.Args = []string{"hoard", "version"}
	assert.Equal(t, 0, run())
}
