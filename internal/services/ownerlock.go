package services

import "sync"

// OwnerLocks serializes mutating operations per owner so a rebalance appears
// atomic to every other operation on the same portfolio. Operations on
// different owners never contend on each other's lock.
type OwnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOwnerLocks creates an empty lock table.
func NewOwnerLocks() *OwnerLocks {
	return &OwnerLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the owner's lock, creating it on first use, and returns the
// unlock function.
func (l *OwnerLocks) Lock(owner string) func() {
	l.mu.Lock()
	lock, ok := l.locks[owner]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[owner] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
