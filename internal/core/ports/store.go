package ports

import "go.trai.ch/hoard/internal/core/domain"

// GlobalStore defines the interface for the shared cache tier, addressed by
// global identity. It is slower than the local tier but survives local
// cache clears.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type GlobalStore interface {
	// Fetch returns the artifact files stored under identity.
	// Reports domain.ErrNotInGlobalCache when no artifact exists.
	Fetch(identity domain.GlobalIdentity) ([]string, error)

	// Publish copies file into the artifact for identity.
	Publish(identity domain.GlobalIdentity, file string) error

	// Remove deletes the artifact for identity.
	Remove(identity domain.GlobalIdentity) error

	// LockPath returns the lock file guarding this tier.
	LockPath() string
}
