package csp

import (
	"github.com/joeycumines/go-csp/datastore"
	"github.com/joeycumines/go-csp/guard"
)

// readGuard is the Guard implementation backing Input.Guard. It never
// transfers a value itself: once an Alternative resolves in its favor,
// the caller still must call Read (or StartRead) on the same channel to
// actually take the value, exactly as for any other guard.
type readGuard[T any] struct {
	core    *core[T]
	enabled bool
}

func (g *readGuard[T]) readyLocked() bool {
	c := g.core
	if c.poisonStrength > c.readImmunity {
		return true
	}
	if c.store != nil {
		return c.store.State() != datastore.Empty
	}
	return c.hasData
}

func (g *readGuard[T]) Enable(alt guard.Alt) bool {
	c := g.core
	c.mu.Lock()
	defer c.mu.Unlock()
	a := alt.(*Alternative)
	if c.altWaiter != nil && c.altWaiter != a {
		panic(newError(MisuseALT, "csp: two Alternatives registered on the same channel read end"))
	}
	g.enabled = true
	c.altWaiter = a
	return g.readyLocked()
}

func (g *readGuard[T]) Disable() bool {
	c := g.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if g.enabled {
		g.enabled = false
		c.altWaiter = nil
	}
	return g.readyLocked()
}

var _ guard.Guard = (*readGuard[int])(nil)
