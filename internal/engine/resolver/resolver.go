// Package resolver implements the two-tier component lookup algorithm.
package resolver

import (
	"errors"
	"strings"

	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/hoard/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scope labels used when reporting lock contention.
const (
	localScope  = "local cache"
	globalScope = "global cache"
)

// Resolver maps component ids to the files backing them. It consults the
// local tier first, pulls from the global store on a miss, and finally
// defers to the caller's missing policy. All callers following the same
// local-before-global lock order keeps the two scopes deadlock free.
type Resolver struct {
	provider ports.LocalProvider
	store    ports.GlobalStore
	locker   ports.Locker
	settings domain.Settings
}

// NewResolver creates a resolver over the given tiers.
func NewResolver(
	provider ports.LocalProvider,
	store ports.GlobalStore,
	locker ports.Locker,
	settings domain.Settings,
) *Resolver {
	return &Resolver{
		provider: provider,
		store:    store,
		locker:   locker,
		settings: settings,
	}
}

// Files returns the file set backing id. It never returns an empty set
// successfully: a component that cannot be found in either tier, and that
// the policy does not construct, is a domain.ErrComponentNotFound.
func (r *Resolver) Files(id domain.ComponentID, policy domain.MissingPolicy) ([]string, error) {
	var files []string
	err := r.locker.WithLock(localScope, r.provider.LockPath(), func() error {
		var err error
		files, err = r.lookup(id, policy)
		return err
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// File resolves id and requires exactly one backing file.
func (r *Resolver) File(id domain.ComponentID, policy domain.MissingPolicy) (string, error) {
	files, err := r.Files(id, policy)
	if err != nil {
		return "", err
	}
	return single(id, files)
}

// Define registers files as the authoritative local set for id, replacing
// any prior mapping.
func (r *Resolver) Define(id domain.ComponentID, files []string) error {
	if len(files) == 0 {
		return zerr.With(domain.ErrEmptyDefine, "component", id.String())
	}
	return r.locker.WithLock(localScope, r.provider.LockPath(), func() error {
		return r.provider.DefineComponent(id, files)
	})
}

// Publish pushes the unique local file for id to the global store. The
// component must already resolve to exactly one file; zero or several fail
// with the same errors as File.
func (r *Resolver) Publish(id domain.ComponentID) error {
	var file string
	err := r.locker.WithLock(localScope, r.provider.LockPath(), func() error {
		files, err := r.lookup(id, domain.Fail)
		if err != nil {
			return err
		}
		file, err = single(id, files)
		return err
	})
	if err != nil {
		return err
	}
	return r.store.Publish(r.settings.IdentityFor(id), file)
}

// Clear removes the global artifact for id. The local tier is untouched.
func (r *Resolver) Clear(id domain.ComponentID) error {
	return r.locker.WithLock(globalScope, r.store.LockPath(), func() error {
		return r.store.Remove(r.settings.IdentityFor(id))
	})
}

// lookup runs the miss-fallback chain. It is called with the local lock
// held.
func (r *Resolver) lookup(id domain.ComponentID, policy domain.MissingPolicy) ([]string, error) {
	files, err := r.localFiles(id)
	if err != nil || len(files) > 0 {
		return files, err
	}

	// Local miss: pull the global artifact down, then re-check.
	if err := r.pullFromGlobal(id); err != nil {
		return nil, err
	}
	files, err = r.localFiles(id)
	if err != nil || len(files) > 0 {
		return files, err
	}

	if policy.Action == nil {
		return nil, zerr.With(domain.ErrComponentNotFound, "component", id.String())
	}
	if err := policy.Action(); err != nil {
		return nil, err
	}
	files, err = r.localFiles(id)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		// The construction action did not populate the local provider.
		return nil, zerr.With(domain.ErrComponentNotFound, "component", id.String())
	}
	if policy.Publish {
		identity := r.settings.IdentityFor(id)
		for _, file := range files {
			if err := r.store.Publish(identity, file); err != nil {
				return nil, err
			}
		}
	}
	return files, nil
}

// pullFromGlobal copies the global artifact for id into the local tier
// under the nested global lock. A missing artifact is an expected outcome,
// not an error; any other store failure propagates.
func (r *Resolver) pullFromGlobal(id domain.ComponentID) error {
	return r.locker.WithLock(globalScope, r.store.LockPath(), func() error {
		artifacts, err := r.store.Fetch(r.settings.IdentityFor(id))
		if errors.Is(err, domain.ErrNotInGlobalCache) {
			return nil
		}
		if err != nil {
			return err
		}
		return r.provider.DefineComponent(id, artifacts)
	})
}

func (r *Resolver) localFiles(id domain.ComponentID) ([]string, error) {
	return r.provider.Component(id)
}

// single requires files to have exactly one element. More than one is an
// ambiguity error listing every candidate path.
func single(id domain.ComponentID, files []string) (string, error) {
	if len(files) != 1 {
		err := zerr.With(domain.ErrAmbiguousComponent, "component", id.String())
		return "", zerr.With(err, "files", strings.Join(files, ", "))
	}
	return files[0], nil
}
