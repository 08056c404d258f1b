package fairmutex

import (
	"container/list"
	"context"
	"sync"
)

// Mutex is a fair binary semaphore: at most one claimer at a time, waiters
// served strictly in arrival order. Reentrance is not supported: claiming
// a Mutex already held by the calling goroutine deadlocks it, same as
// sync.Mutex.
//
// The zero value is not usable; construct with New.
type Mutex struct {
	mu      sync.Mutex
	claimed bool
	waiters list.List // of *waiter, oldest at Front
}

type waiter struct {
	granted chan struct{}
}

// New returns a ready-to-use Mutex.
func New() *Mutex {
	return &Mutex{}
}

// Claim blocks until the Mutex is owned by the caller, or ctx is done
// first, in which case ctx.Err() is returned and the Mutex is not claimed
// (unless ownership was handed off concurrently with the cancellation, in
// which case Claim releases it again before returning the error, so the
// caller never has to reason about a "maybe claimed" outcome).
func (m *Mutex) Claim(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	if !m.claimed && m.waiters.Len() == 0 {
		m.claimed = true
		m.mu.Unlock()
		return nil
	}
	w := &waiter{granted: make(chan struct{})}
	el := m.waiters.PushBack(w)
	m.mu.Unlock()

	select {
	case <-w.granted:
		return nil

	case <-ctx.Done():
		m.mu.Lock()
		select {
		case <-w.granted:
			// ownership was handed to us in the race with cancellation;
			// accept it, then immediately release it, so we don't leave
			// the Mutex claimed with nobody holding it.
			m.mu.Unlock()
			m.Release()
			return ctx.Err()
		default:
			m.waiters.Remove(el)
			m.mu.Unlock()
			return ctx.Err()
		}
	}
}

// Release unblocks the longest-waiting claimer, or, if none are waiting,
// marks the Mutex free. Releasing an unclaimed Mutex panics.
func (m *Mutex) Release() {
	m.mu.Lock()
	if !m.claimed {
		m.mu.Unlock()
		panic("fairmutex: Release of unclaimed Mutex")
	}

	front := m.waiters.Front()
	if front == nil {
		m.claimed = false
		m.mu.Unlock()
		return
	}

	m.waiters.Remove(front)
	close(front.Value.(*waiter).granted)
	m.mu.Unlock()
}
