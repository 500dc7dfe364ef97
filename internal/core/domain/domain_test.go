package domain_test

import (
	"testing"

	"go.trai.ch/hoard/internal/core/domain"
)

func TestSettings_IdentityFor(t *testing.T) {
	s := domain.Settings{Organization: "ch.trai", Platform: "1.0"}

	identity := s.IdentityFor(domain.ComponentID("compiler-bridge"))
	if identity.Organization != "ch.trai" {
		t.Errorf("expected organization ch.trai, got %s", identity.Organization)
	}
	if identity.Name != "compiler-bridge" {
		t.Errorf("expected name compiler-bridge, got %s", identity.Name)
	}
	if identity.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", identity.Version)
	}
}

func TestSettings_IdentityForIsDeterministic(t *testing.T) {
	s := domain.Settings{Organization: "ch.trai", Platform: "1.0"}
	id := domain.ComponentID("compiler-bridge")

	if s.IdentityFor(id) != s.IdentityFor(id) {
		t.Error("expected identical identities for the same id and settings")
	}
}

func TestGlobalIdentity_String(t *testing.T) {
	identity := domain.GlobalIdentity{
		Organization: "ch.trai",
		Name:         "compiler-bridge",
		Version:      "1.0",
	}
	if got := identity.String(); got != "ch.trai/compiler-bridge/1.0" {
		t.Errorf("unexpected identity string: %s", got)
	}
}

func TestMissingPolicy_Variants(t *testing.T) {
	if domain.Fail.Action != nil {
		t.Error("Fail policy must carry no construction action")
	}

	p := domain.Define(true, func() error { return nil })
	if p.Action == nil {
		t.Error("Define policy must carry the construction action")
	}
	if !p.Publish {
		t.Error("Define(true, ...) must request publication")
	}
}
