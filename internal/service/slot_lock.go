package service

import (
	"sync"

	"github.com/chartbase/backend/internal/domain"
)

// slotLocker serialises mutations of one (account, slot) pair so that two
// concurrent uploads cannot interleave their purge and upload steps.
// Distinct slots and accounts proceed in parallel.
type slotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *slotLocker) lock(sonolusID string, slot domain.Slot) (unlock func()) {
	key := sonolusID + "/" + slot.String()

	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
