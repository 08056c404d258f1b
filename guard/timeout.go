package guard

import "time"

// timeoutGuard fires once its deadline passes. A relative timeoutGuard
// (constructed via Timeout) recomputes its deadline from now() each time
// Enable is called, so the same Guard value may be reused across
// sequential select rounds on one Alternative; an absolute one
// (Deadline) fires at a fixed wall-clock instant regardless of reuse.
type timeoutGuard struct {
	relative time.Duration // zero if absolute
	deadline time.Time
	timer    *time.Timer
}

// Timeout returns a Guard that becomes ready d after the Enable call that
// starts the round it's used in.
func Timeout(d time.Duration) Guard {
	return &timeoutGuard{relative: d}
}

// Deadline returns a Guard that becomes ready at the fixed instant t,
// regardless of which round's Enable call observes it.
func Deadline(t time.Time) Guard {
	return &timeoutGuard{deadline: t}
}

func (g *timeoutGuard) Enable(alt Alt) bool {
	deadline := g.deadline
	if g.relative != 0 {
		deadline = time.Now().Add(g.relative)
		g.deadline = deadline
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return true
	}
	g.timer = time.AfterFunc(remaining, alt.Schedule)
	return false
}

func (g *timeoutGuard) Disable() bool {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	return !time.Now().Before(g.deadline)
}
