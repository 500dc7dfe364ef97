package ports

import "go.trai.ch/hoard/internal/core/domain"

// LocalProvider defines the interface for the fast, machine-local cache tier.
//
//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type LocalProvider interface {
	// Component returns the files registered for id. An empty result means
	// the component is absent from this tier.
	Component(id domain.ComponentID) ([]string, error)

	// DefineComponent registers files as the authoritative set for id,
	// replacing any prior mapping wholesale.
	DefineComponent(id domain.ComponentID, files []string) error

	// LockPath returns the lock file guarding this tier.
	LockPath() string
}
