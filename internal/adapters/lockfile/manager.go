// Package lockfile implements advisory cross-process locking for the cache tiers.
package lockfile

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/hoard/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.Locker on OS advisory locks.
//
// Two independent mechanisms cooperate: a per-path in-process mutex
// serializes goroutines around the open/flock sequence, and the advisory OS
// lock serializes cooperating processes. A goroutine that has to wait does
// so on the mutex while this process holds the OS lock, so the process
// never contends on an OS lock it already owns.
type Manager struct {
	log ports.Logger

	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

// NewManager creates a lock manager that reports contention waits to log.
func NewManager(log ports.Logger) *Manager {
	return &Manager{
		log:   log,
		paths: make(map[string]*sync.Mutex),
	}
}

// WithLock runs fn while holding an exclusive advisory lock on the file at
// path, creating the file if needed. It blocks until the lock is
// obtainable; a single "waiting" notice is logged when another process
// holds it. The lock is released on every exit path of fn.
func (m *Manager) WithLock(scope, path string, fn func() error) error {
	path = filepath.Clean(path)

	pm := m.pathMutex(path)
	pm.Lock()
	defer pm.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockFileOpenFailed.Error()), "path", path)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockAcquireFailed.Error()), "path", path)
	}
	if !locked {
		m.log.Info("waiting for " + scope + " lock on " + path)
		if err := fl.Lock(); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLockAcquireFailed.Error()), "path", path)
		}
	}
	defer func() {
		_ = fl.Unlock()
	}()

	return fn()
}

// pathMutex returns the in-process mutex for path, creating it on first use.
func (m *Manager) pathMutex(path string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	pm, ok := m.paths[path]
	if !ok {
		pm = &sync.Mutex{}
		m.paths[path] = pm
	}
	return pm
}
