package domain

import "go.trai.ch/zerr"

var (
	// ErrComponentNotFound is returned when a component exists in neither
	// cache tier and the missing policy did not (or could not) construct it.
	ErrComponentNotFound = zerr.New("component not found")

	// ErrAmbiguousComponent is returned when a single file is requested but
	// the component resolves to more than one.
	ErrAmbiguousComponent = zerr.New("component resolves to more than one file")

	// ErrNotInGlobalCache is reported by the global store when no artifact
	// exists for an identity. The resolver absorbs it; it never reaches a
	// caller.
	ErrNotInGlobalCache = zerr.New("not in global cache")

	// ErrEmptyDefine is returned when a component is defined with no files.
	ErrEmptyDefine = zerr.New("cannot define a component with no files")

	// ErrLockFileOpenFailed is returned when a lock file cannot be created
	// or opened.
	ErrLockFileOpenFailed = zerr.New("failed to open lock file")

	// ErrLockAcquireFailed is returned when the advisory lock on an opened
	// lock file cannot be acquired.
	ErrLockAcquireFailed = zerr.New("failed to acquire file lock")

	// ErrIndexReadFailed is returned when a local component index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read component index")

	// ErrIndexWriteFailed is returned when a local component index cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write component index")

	// ErrIndexMarshalFailed is returned when a local component index cannot be marshaled.
	ErrIndexMarshalFailed = zerr.New("failed to marshal component index")

	// ErrIndexUnmarshalFailed is returned when a local component index cannot be unmarshaled.
	ErrIndexUnmarshalFailed = zerr.New("failed to unmarshal component index")

	// ErrCacheDirCreateFailed is returned when a cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrArtifactCopyFailed is returned when an artifact file cannot be
	// copied between tiers.
	ErrArtifactCopyFailed = zerr.New("failed to copy artifact")

	// ErrStoreListFailed is returned when a global artifact directory
	// cannot be listed.
	ErrStoreListFailed = zerr.New("failed to list global artifact")

	// ErrStoreRemoveFailed is returned when a global artifact cannot be removed.
	ErrStoreRemoveFailed = zerr.New("failed to remove global artifact")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoComponentsSpecified is returned when a resolve request names no
	// components.
	ErrNoComponentsSpecified = zerr.New("no components specified")
)
