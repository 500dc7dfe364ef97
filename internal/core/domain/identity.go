package domain

import "path"

// GlobalIdentity is the fully qualified coordinate a component is addressed
// by in the global store: a fixed organization, the component id as name,
// and a fixed platform version.
type GlobalIdentity struct {
	Organization string
	Name         string
	Version      string
}

// String renders the identity as "organization/name/version".
func (g GlobalIdentity) String() string {
	return path.Join(g.Organization, g.Name, g.Version)
}

// Settings holds the resolved configuration for both cache tiers.
type Settings struct {
	// Organization is the fixed organization part of every global identity.
	Organization string

	// Platform is the fixed version part of every global identity.
	Platform string

	// LocalDir is the root directory of the local cache tier.
	LocalDir string

	// GlobalDir is the root directory of the global cache tier.
	GlobalDir string
}

// IdentityFor maps a component id to its global coordinate. The mapping is
// deterministic: two processes with the same settings always address the
// same artifact.
func (s Settings) IdentityFor(id ComponentID) GlobalIdentity {
	return GlobalIdentity{
		Organization: s.Organization,
		Name:         id.String(),
		Version:      s.Platform,
	}
}
