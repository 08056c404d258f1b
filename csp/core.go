package csp

import (
	"context"
	"sync"

	"github.com/joeycumines/go-csp/cspobserve"
	"github.com/joeycumines/go-csp/datastore"
	"github.com/joeycumines/go-csp/fairmutex"
	"github.com/joeycumines/go-csp/guard"
)

// core holds the state of one channel, all of it guarded by mu. It is
// shared by the read-end and write-end handles returned by the New*
// constructors; neither handle owns any channel state outside mu's
// critical section.
type core[T any] struct {
	mu   sync.Mutex
	wake chan struct{} // closed + replaced under mu to broadcast a state change

	// unbuffered rendezvous state
	hasData                bool
	value                  T
	extendedReadInProgress bool

	// ALT registration: at most one Alternative enabled on the read end.
	altWaiter *Alternative

	// poison propagation
	poisonStrength int
	readImmunity   int
	writeImmunity  int

	// buffered channels delegate to store instead of hasData/value; nil
	// means unbuffered.
	store datastore.Store[T]

	// multiplicity: whether more than one goroutine may hold the read (resp.
	// write) end concurrently. When true, the corresponding fairmutex
	// serializes competing ends so the kernel above still only ever sees
	// one reader/writer at a time.
	sharedRead  bool
	sharedWrite bool
	readMu      *fairmutex.Mutex
	writeMu     *fairmutex.Mutex

	obs cspobserve.Observer
}

func newCore[T any](store datastore.Store[T], sharedRead, sharedWrite bool, obs cspobserve.Observer) *core[T] {
	if obs == nil {
		obs = cspobserve.NoOp()
	}
	c := &core[T]{
		wake:        make(chan struct{}),
		store:       store,
		sharedRead:  sharedRead,
		sharedWrite: sharedWrite,
		obs:         obs,
	}
	if sharedRead {
		c.readMu = fairmutex.New()
	}
	if sharedWrite {
		c.writeMu = fairmutex.New()
	}
	return c
}

// broadcast wakes every goroutine parked in waitLocked, and the registered
// ALT, if any. Must be called while holding mu.
func (c *core[T]) broadcast() {
	close(c.wake)
	c.wake = make(chan struct{})
	if c.altWaiter != nil {
		c.altWaiter.Schedule()
	}
}

// waitLocked releases mu, blocks until either the channel's doorbell rings
// or ctx is done, then reacquires mu. Callers must always recheck their
// predicate in a loop afterward: this is a broadcast, not a signal to one
// specific waiter, and may fire for an unrelated state change (the Go
// analogue of a spurious wakeup). Every doorbell wake is reported to the
// observer's SpuriousWakeup, whether or not it satisfies the caller's
// predicate.
func (c *core[T]) waitLocked(ctx context.Context) error {
	wake := c.wake
	c.mu.Unlock()
	select {
	case <-wake:
		c.mu.Lock()
		c.obs.SpuriousWakeup()
		return nil
	case <-ctx.Done():
		c.mu.Lock()
		return ctx.Err()
	}
}

// bothEndsImmune reports whether a poison condition at the channel's
// current strength would be invisible at both ends. Nothing in this
// package calls it.
func (c *core[T]) bothEndsImmune() bool {
	return c.poisonStrength <= c.readImmunity && c.poisonStrength <= c.writeImmunity
}

func (c *core[T]) poison(level int) {
	c.mu.Lock()
	if level > c.poisonStrength {
		c.poisonStrength = level
		c.obs.PoisonRaised(level)
		c.broadcast()
	}
	c.mu.Unlock()
}

// checkPoisonLocked returns a Poisoned error if the channel's poison
// strength exceeds immunity. Must be called while holding mu.
func (c *core[T]) checkPoisonLocked(immunity int) error {
	if c.poisonStrength > immunity {
		return poisonedError(c.poisonStrength, immunity)
	}
	return nil
}

// compile-time assertion that *Alternative (defined in alternative.go)
// implements guard.Alt, which core.broadcast relies on.
var _ guard.Alt = (*Alternative)(nil)
