package ports

// Locker provides scoped, advisory, cross-process mutual exclusion keyed by
// a lock file path.
//
//go:generate go run go.uber.org/mock/mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// WithLock runs fn while holding an exclusive lock on the file at path,
	// blocking until the lock is obtainable. The scope label is only used
	// when reporting contention waits. The lock is released on every exit
	// path of fn, including an error return.
	WithLock(scope, path string, fn func() error) error
}
