package guard

// skipGuard is always ready; selecting it is how a process offers a
// non-blocking default option in an Alternative.
type skipGuard struct{}

// Skip returns a Guard that is always ready.
func Skip() Guard { return skipGuard{} }

func (skipGuard) Enable(Alt) bool { return true }
func (skipGuard) Disable() bool   { return true }
