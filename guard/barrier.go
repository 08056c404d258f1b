package guard

import "sync"

// barrierState is shared by every Guard returned for one Barrier(n) call.
type barrierState struct {
	mu      sync.Mutex
	n       int
	arrived int
	waiting []Alt
	closed  bool
}

// barrierGuard is one party's handle on a shared barrierState.
type barrierGuard struct {
	state *barrierState
	ready bool

	// pending is true between an Enable call that registered this guard's
	// alt in state.waiting (the round didn't complete yet) and the
	// matching Disable, so Disable knows to undo that registration.
	pending bool
	alt     Alt
}

// Barrier returns a Guard that becomes ready, for all n holders
// simultaneously, once n of them have concurrently enabled it in the same
// round (e.g. n processes each mounting it in an Alternative). It's an
// n-party rendezvous event, the "barrier guard" variant named in the
// channel-kernel's guard taxonomy but otherwise unspecified by it.
//
// The returned func permanently closes the barrier: every guard still
// waiting becomes ready immediately (so no Alternative is left hung), and
// every future Enable reports ready without requiring n arrivals.
func Barrier(n int) (Guard, func()) {
	if n < 1 {
		panic("guard: Barrier: n must be >= 1")
	}
	st := &barrierState{n: n}
	return &barrierGuard{state: st}, st.close
}

func (g *barrierGuard) Enable(alt Alt) bool {
	st := g.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.closed {
		g.ready = true
		return true
	}

	st.arrived++
	if st.arrived < st.n {
		g.ready = false
		g.pending = true
		g.alt = alt
		st.waiting = append(st.waiting, alt)
		return false
	}

	// last arrival of the round: everyone (including us) is now ready.
	st.arrived = 0
	waiting := st.waiting
	st.waiting = nil
	g.ready = true
	for _, w := range waiting {
		w.Schedule()
	}
	return true
}

// Disable undoes an Enable that left this guard registered in
// state.waiting without completing the round (e.g. a timeout or another
// guard won the same select round first): it removes this guard's alt
// from the waiting list and retracts its arrival, so a party that never
// completes the barrier can't inflate arrived or leave a stale Alt for
// Enable to Schedule later.
func (g *barrierGuard) Disable() bool {
	st := g.state
	st.mu.Lock()
	defer st.mu.Unlock()

	ready := g.ready
	g.ready = false
	if g.pending {
		g.pending = false
		for i, w := range st.waiting {
			if w == g.alt {
				st.waiting = append(st.waiting[:i:i], st.waiting[i+1:]...)
				st.arrived--
				break
			}
		}
		g.alt = nil
	}
	return ready
}

func (st *barrierState) close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.closed = true
	waiting := st.waiting
	st.waiting = nil
	for _, w := range waiting {
		w.Schedule()
	}
}
