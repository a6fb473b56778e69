package cart

import "sync"

// AccountLocks serializes cart-affecting operations per account. Cart
// mutations and checkout share one instance, so a cart write issued
// while a checkout for the same account is in flight blocks until that
// checkout's transaction completes. Different accounts never contend.
type AccountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAccountLocks() *AccountLocks {
	return &AccountLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the given account and returns the unlock
// function.
func (l *AccountLocks) Lock(accountID string) func() {
	l.mu.Lock()
	m, exists := l.locks[accountID]
	if !exists {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
