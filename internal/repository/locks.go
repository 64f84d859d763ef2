package repository

import "sync"

// LockRegistry hands out one mutex per show identifier. The lock for a
// show is created lazily on first reference and kept for the life of
// the process; the identifier space is small and long-lived, so no
// eviction is needed. Creation is serialized so two callers can never
// end up holding two different mutexes for the same show.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockRegistry constructs an empty LockRegistry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[string]*sync.Mutex)}
}

// Get returns the mutex dedicated to the given show identifier,
// creating it on first use. Every caller passing the same identifier
// receives the same mutex.
func (r *LockRegistry) Get(showID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[showID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[showID] = l
	}
	return l
}
