// Package localdir implements the local cache tier on a directory of JSON
// component indexes.
package localdir

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/zerr"
)

// Provider implements ports.LocalProvider. Each component owns one index
// file (<root>/<hash>.json) listing its files and one directory
// (<root>/<hash>/) holding them; hash is the xxhash of the component id.
// Callers are expected to hold the local lock around mutations.
type Provider struct {
	root string
}

// NewProvider creates a provider rooted at the given directory.
func NewProvider(root string) (*Provider, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	return &Provider{root: root}, nil
}

// index is the on-disk record for one component.
type index struct {
	ID    string   `json:"id"`
	Files []string `json:"files"`
}

// Component returns the files registered for id. A missing index means the
// component is absent and is not an error.
func (p *Provider) Component(id domain.ComponentID) ([]string, error) {
	//nolint:gosec // Path is constructed from the root and a hashed id
	data, err := os.ReadFile(p.indexPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrIndexReadFailed.Error())
	}

	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, zerr.Wrap(err, domain.ErrIndexUnmarshalFailed.Error())
	}
	return idx.Files, nil
}

// DefineComponent imports files into the component's directory and rewrites
// its index, replacing any prior mapping wholesale.
func (p *Provider) DefineComponent(id domain.ComponentID, files []string) error {
	dir := p.componentDir(id)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	kept := make([]string, 0, len(files))
	for _, src := range files {
		src = filepath.Clean(src)
		dst := filepath.Join(dir, filepath.Base(src))
		if src != dst {
			if err := copyFile(src, dst); err != nil {
				return zerr.With(err, "file", src)
			}
		}
		kept = append(kept, dst)
	}

	idx := index{ID: id.String(), Files: kept}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}

	//nolint:gosec // Path is constructed from the root and a hashed id
	if err := os.WriteFile(p.indexPath(id), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	return nil
}

// LockPath returns the lock file guarding this tier.
func (p *Provider) LockPath() string {
	return filepath.Join(p.root, ".hoard.lock")
}

func (p *Provider) indexPath(id domain.ComponentID) string {
	return filepath.Join(p.root, hashID(id)+".json")
}

func (p *Provider) componentDir(id domain.ComponentID) string {
	return filepath.Join(p.root, hashID(id))
}

func hashID(id domain.ComponentID) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(id.String()))
}

func copyFile(src, dst string) error {
	//nolint:gosec // Source path is provided by a trusted caller
	in, err := os.Open(src)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error())
	}
	defer func() { _ = in.Close() }()

	//nolint:gosec // Destination lives inside the cache root
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
