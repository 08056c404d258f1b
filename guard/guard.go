package guard

// Alt is the capability an Alternative offers to a Guard during the enable
// phase: a way for the guard to wake the Alternative up once it becomes
// ready, some time after Enable returned false. Implemented by
// *csp.Alternative; defined here, rather than imported from csp, so this
// package has no dependency on csp (csp depends on guard, not the reverse).
type Alt interface {
	// Schedule wakes the Alternative that most recently enabled this guard.
	// Safe to call from any goroutine, at most once per enable/disable
	// round, any time after Enable(alt) returns false and before the
	// matching Disable.
	Schedule()
}

// Guard is an event a process can wait upon via Alternative.Select (and
// friends). Implementations: the channel-read guard (csp.Input.Guard),
// TimeoutGuard (Timeout/Deadline), SkipGuard (Skip), and the barrier guard
// (Barrier).
type Guard interface {
	// Enable is called once per guard, in registration order, at the start
	// of a select round. It reports whether the event is ready right now.
	// If not ready, the guard must arrange to call alt.Schedule() the
	// moment it becomes ready, and remember enough state to answer Disable
	// correctly later.
	Enable(alt Alt) (ready bool)
	// Disable is called once per guard that was enabled, in reverse
	// registration order, after the select round resolves (whether by a
	// guard becoming ready, a timeout, or the guard already having been
	// ready during Enable). It must undo any registration performed by
	// Enable and report whether the event is, right now, still ready.
	Disable() (ready bool)
}
