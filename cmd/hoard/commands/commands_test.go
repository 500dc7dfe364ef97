package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/hoard/cmd/hoard/commands"
	"go.trai.ch/hoard/internal/adapters/globaldir"
	"go.trai.ch/hoard/internal/adapters/localdir"
	"go.trai.ch/hoard/internal/adapters/lockfile"
	"go.trai.ch/hoard/internal/app"
	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/hoard/internal/engine/resolver"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Error(error) {}

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer, string) {
	t.Helper()
	tmpDir := t.TempDir()

	provider, err := localdir.NewProvider(filepath.Join(tmpDir, "local"))
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	store, err := globaldir.NewStore(filepath.Join(tmpDir, "global"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	settings := domain.Settings{Organization: "ch.trai", Platform: "1.0"}
	res := resolver.NewResolver(provider, store, lockfile.NewManager(nopLogger{}), settings)

	cli := commands.New(app.New(res))
	var buf bytes.Buffer
	cli.SetOutput(&buf)
	return cli, &buf, tmpDir
}

func execute(t *testing.T, cli *commands.CLI, args ...string) error {
	t.Helper()
	cli.SetArgs(args)
	return cli.Execute(context.Background())
}

func TestDefineAndResolve(t *testing.T) {
	cli, buf, tmpDir := newCLI(t)

	jar := filepath.Join(tmpDir, "bridge.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0o600); err != nil {
		t.Fatalf("failed to write jar: %v", err)
	}

	if err := execute(t, cli, "define", "compiler-bridge", jar); err != nil {
		t.Fatalf("define failed: %v", err)
	}
	if err := execute(t, cli, "resolve", "compiler-bridge"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "compiler-bridge") {
		t.Errorf("expected component id in output, got: %s", output)
	}
	if !strings.Contains(output, "bridge.jar") {
		t.Errorf("expected file path in output, got: %s", output)
	}
}

func TestResolve_UnknownComponent(t *testing.T) {
	cli, _, _ := newCLI(t)

	err := execute(t, cli, "resolve", "missing")
	if !errors.Is(err, domain.ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got: %v", err)
	}
}

func TestResolve_NoArgs(t *testing.T) {
	cli, _, _ := newCLI(t)

	if err := execute(t, cli, "resolve"); err == nil {
		t.Fatal("expected usage error for resolve without arguments")
	}
}

func TestResolve_SingleFlagRejectsAmbiguity(t *testing.T) {
	cli, _, tmpDir := newCLI(t)

	x := filepath.Join(tmpDir, "x.jar")
	y := filepath.Join(tmpDir, "y.jar")
	for _, p := range []string{x, y} {
		if err := os.WriteFile(p, []byte("jar"), 0o600); err != nil {
			t.Fatalf("failed to write jar: %v", err)
		}
	}

	if err := execute(t, cli, "define", "ambiguous", x, y); err != nil {
		t.Fatalf("define failed: %v", err)
	}

	err := execute(t, cli, "resolve", "--single", "ambiguous")
	if !errors.Is(err, domain.ErrAmbiguousComponent) {
		t.Fatalf("expected ErrAmbiguousComponent, got: %v", err)
	}
}

func TestPublishAndClear(t *testing.T) {
	cli, _, tmpDir := newCLI(t)

	jar := filepath.Join(tmpDir, "bridge.jar")
	if err := os.WriteFile(jar, []byte("jar"), 0o600); err != nil {
		t.Fatalf("failed to write jar: %v", err)
	}

	if err := execute(t, cli, "define", "compiler-bridge", jar); err != nil {
		t.Fatalf("define failed: %v", err)
	}
	if err := execute(t, cli, "publish", "compiler-bridge"); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := execute(t, cli, "clear", "compiler-bridge"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	cli, _, _ := newCLI(t)

	if err := execute(t, cli, "--help"); err != nil {
		t.Fatalf("expected no error for help, got: %v", err)
	}
}
