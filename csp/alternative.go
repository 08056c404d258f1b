package csp

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/joeycumines/go-csp/cspobserve"
	"github.com/joeycumines/go-csp/guard"
)

// Alternative is a selective-wait (ALT) over a fixed set of Guards,
// offering three resolution policies: Select (arbitrary among the ready
// guards), PriSelect (lowest index among the ready guards), and FairSelect
// (cyclic rotation starting just after the guard chosen by the previous
// FairSelect call, so no guard can starve another by always being ready
// first).
//
// An Alternative is not safe for concurrent use by multiple goroutines: at
// most one of Select/PriSelect/FairSelect may run at a time. It may,
// however, be reused sequentially for any number of rounds.
type Alternative struct {
	guards []guard.Guard
	obs    cspobserve.Observer

	mu    sync.Mutex
	wake  chan struct{}
	woken bool

	fairNext int // index fairSelect starts its rotation from next round
}

// NewAlternative constructs an Alternative over guards, resolved in the
// order given (this order is what PriSelect treats as priority, and what
// FairSelect rotates through). obs may be nil.
func NewAlternative(obs cspobserve.Observer, guards ...guard.Guard) *Alternative {
	if obs == nil {
		obs = cspobserve.NoOp()
	}
	cp := make([]guard.Guard, len(guards))
	copy(cp, guards)
	return &Alternative{guards: cp, obs: obs}
}

// Schedule implements guard.Alt. Any guard enabled during the current
// round may call it, from any goroutine, once it becomes ready.
func (a *Alternative) Schedule() {
	a.mu.Lock()
	if !a.woken {
		a.woken = true
		close(a.wake)
	}
	a.mu.Unlock()
}

// Select resolves to the index of an arbitrarily-chosen ready guard.
func (a *Alternative) Select(ctx context.Context) (int, error) {
	return a.run(ctx, func(ready []int) int {
		return ready[rand.IntN(len(ready))]
	})
}

// PriSelect resolves to the lowest index among the ready guards.
func (a *Alternative) PriSelect(ctx context.Context) (int, error) {
	return a.run(ctx, func(ready []int) int {
		return ready[0] // run() always supplies ready in ascending order
	})
}

// FairSelect resolves to the first ready guard at or after the index
// following whichever guard FairSelect chose last time, wrapping around.
// The first call behaves like PriSelect.
func (a *Alternative) FairSelect(ctx context.Context) (int, error) {
	return a.run(ctx, func(ready []int) int {
		n := len(a.guards)
		for i := 0; i < n; i++ {
			idx := (a.fairNext + i) % n
			for _, r := range ready {
				if r == idx {
					a.fairNext = (idx + 1) % n
					return idx
				}
			}
		}
		// unreachable: ready is non-empty and drawn from [0,n)
		return ready[0]
	})
}

// run implements the two-phase enable/disable protocol shared by the three
// selection policies. pick receives the ascending-order indices of the
// guards that are ready once the round resolves, and must return one of
// them.
func (a *Alternative) run(ctx context.Context, pick func(ready []int) int) (int, error) {
	if len(a.guards) == 0 {
		a.obs.AltSelected(-1)
		return -1, newError(MisuseALT, "csp: Alternative has no guards")
	}
	if err := ctx.Err(); err != nil {
		a.obs.AltSelected(-1)
		return -1, interruptedError(err)
	}

	for {
		a.mu.Lock()
		a.wake = make(chan struct{})
		a.woken = false
		a.mu.Unlock()

		enabledReady := false
		for _, g := range a.guards {
			if g.Enable(a) {
				enabledReady = true
			}
		}

		if !enabledReady {
			a.mu.Lock()
			w := a.wake
			woken := a.woken
			a.mu.Unlock()

			if !woken {
				select {
				case <-w:
				case <-ctx.Done():
					a.disableAll()
					a.obs.AltSelected(-1)
					return -1, interruptedError(ctx.Err())
				}
			}
		}

		ready := a.disableAll()
		if len(ready) > 0 {
			idx := pick(ready)
			a.obs.AltSelected(idx)
			return idx, nil
		}
		// every enabled guard went unready again (e.g. a racing reader took
		// the data first); loop and try another round.
	}
}

// disableAll calls Disable, in reverse registration order, on every guard,
// and returns the indices that report ready, in ascending order.
func (a *Alternative) disableAll() []int {
	var ready []int
	for i := len(a.guards) - 1; i >= 0; i-- {
		if a.guards[i].Disable() {
			ready = append(ready, i)
		}
	}
	for i, j := 0, len(ready)-1; i < j; i, j = i+1, j-1 {
		ready[i], ready[j] = ready[j], ready[i]
	}
	return ready
}
