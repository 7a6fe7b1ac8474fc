package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Keys are never evicted, so the
// key space should be bounded (user IDs on a single node).
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its release function
func (lm *LockManager) Lock(key string) (unlock func()) {
	m := lm.GetLock(key)
	m.Lock()
	return m.Unlock
}
