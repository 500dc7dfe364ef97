// Package domain contains the core types for the hoard component cache.
package domain

// ComponentID names a cacheable bundle of files. It is the opaque key into
// both cache tiers.
type ComponentID string

// String returns the id as a plain string.
func (id ComponentID) String() string {
	return string(id)
}

// Permission modes for cache directories and files.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)
