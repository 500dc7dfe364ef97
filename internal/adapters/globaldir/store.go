// Package globaldir implements the shared cache tier on a directory tree
// addressed by global identity.
package globaldir

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.GlobalStore. Artifacts for an identity live under
// <root>/<organization>/<name>/<version>/. Callers are expected to hold the
// global lock around mutations.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	return &Store{root: root}, nil
}

// Fetch returns the artifact files stored under identity. A missing or
// empty artifact directory reports domain.ErrNotInGlobalCache.
func (s *Store) Fetch(identity domain.GlobalIdentity) ([]string, error) {
	dir := s.artifactDir(identity)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrNotInGlobalCache, "identity", identity.String())
		}
		return nil, zerr.Wrap(err, domain.ErrStoreListFailed.Error())
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, zerr.With(domain.ErrNotInGlobalCache, "identity", identity.String())
	}
	return files, nil
}

// Publish copies file into the artifact for identity.
func (s *Store) Publish(identity domain.GlobalIdentity, file string) error {
	dir := s.artifactDir(identity)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	dst := filepath.Join(dir, filepath.Base(file))
	if err := copyFile(file, dst); err != nil {
		return zerr.With(err, "identity", identity.String())
	}
	return nil
}

// Remove deletes the artifact for identity. Removing an absent artifact is
// not an error.
func (s *Store) Remove(identity domain.GlobalIdentity) error {
	if err := os.RemoveAll(s.artifactDir(identity)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreRemoveFailed.Error())
	}
	return nil
}

// LockPath returns the lock file guarding this tier.
func (s *Store) LockPath() string {
	return filepath.Join(s.root, ".hoard.lock")
}

func (s *Store) artifactDir(identity domain.GlobalIdentity) string {
	return filepath.Join(s.root, identity.Organization, identity.Name, identity.Version)
}

func copyFile(src, dst string) error {
	//nolint:gosec // Source path is provided by a trusted caller
	in, err := os.Open(src)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error())
	}
	defer func() { _ = in.Close() }()

	//nolint:gosec // Destination lives inside the store root
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error())
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error())
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error())
	}
	return nil
}
