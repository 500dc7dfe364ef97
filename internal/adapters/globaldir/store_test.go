package globaldir_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/hoard/internal/adapters/globaldir"
	"go.trai.ch/hoard/internal/core/domain"
)

var identity = domain.GlobalIdentity{
	Organization: "ch.trai",
	Name:         "compiler-bridge",
	Version:      "1.0",
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestStore_FetchAbsent(t *testing.T) {
	s, err := globaldir.NewStore(filepath.Join(t.TempDir(), "global"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, err = s.Fetch(identity)
	if !errors.Is(err, domain.ErrNotInGlobalCache) {
		t.Fatalf("expected ErrNotInGlobalCache, got: %v", err)
	}
}

func TestStore_PublishAndFetch(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := globaldir.NewStore(filepath.Join(tmpDir, "global"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	src := writeFile(t, tmpDir, "bridge.jar", "jar bytes")
	if err := s.Publish(identity, src); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	files, err := s.Fetch(identity)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %v", files)
	}
	if filepath.Base(files[0]) != "bridge.jar" {
		t.Errorf("expected bridge.jar, got %s", files[0])
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("failed to read published file: %v", err)
	}
	if string(data) != "jar bytes" {
		t.Errorf("published content mismatch: %q", data)
	}
}

func TestStore_IdentitiesAreIndependent(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := globaldir.NewStore(filepath.Join(tmpDir, "global"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	src := writeFile(t, tmpDir, "bridge.jar", "jar bytes")
	if err := s.Publish(identity, src); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	other := identity
	other.Version = "2.0"
	_, err = s.Fetch(other)
	if !errors.Is(err, domain.ErrNotInGlobalCache) {
		t.Fatalf("expected ErrNotInGlobalCache for other version, got: %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := globaldir.NewStore(filepath.Join(tmpDir, "global"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	src := writeFile(t, tmpDir, "bridge.jar", "jar bytes")
	if err := s.Publish(identity, src); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if err := s.Remove(identity); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	_, err = s.Fetch(identity)
	if !errors.Is(err, domain.ErrNotInGlobalCache) {
		t.Fatalf("expected ErrNotInGlobalCache after Remove, got: %v", err)
	}

	// Removing an absent artifact is fine.
	if err := s.Remove(identity); err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
}
