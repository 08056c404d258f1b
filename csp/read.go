package csp

import (
	"context"

	"github.com/joeycumines/go-csp/datastore"
	"github.com/joeycumines/go-csp/guard"
)

func (c *core[T]) readBufferedLocked(ctx context.Context, extended bool) (T, error) {
	var zero T
	for c.store.State() == datastore.Empty {
		if err := c.checkPoisonLocked(c.readImmunity); err != nil {
			return zero, err
		}
		if err := c.waitLocked(ctx); err != nil {
			return zero, interruptedError(err)
		}
	}
	if err := c.checkPoisonLocked(c.readImmunity); err != nil {
		return zero, err
	}
	if extended {
		v := c.store.StartGet()
		c.extendedReadInProgress = true
		return v, nil
	}
	v := c.store.Get()
	c.broadcast()
	return v, nil
}

func (c *core[T]) readUnbufferedLocked(ctx context.Context, extended bool) (T, error) {
	var zero T
	for !c.hasData {
		if err := c.checkPoisonLocked(c.readImmunity); err != nil {
			return zero, err
		}
		if err := c.waitLocked(ctx); err != nil {
			return zero, interruptedError(err)
		}
	}
	if err := c.checkPoisonLocked(c.readImmunity); err != nil {
		return zero, err
	}
	v := c.value
	if extended {
		// hasData stays true: the writer remains blocked until EndRead.
		c.extendedReadInProgress = true
		return v, nil
	}
	c.hasData = false
	c.value = zero
	c.broadcast()
	return v, nil
}

// Read implements Input[T].
func (r reader[T]) Read(ctx context.Context) (T, error) {
	c := r.core
	var zero T

	if c.sharedRead {
		if err := c.readMu.Claim(ctx); err != nil {
			return zero, interruptedError(err)
		}
		defer c.readMu.Release()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		return c.readBufferedLocked(ctx, false)
	}
	return c.readUnbufferedLocked(ctx, false)
}

// StartRead implements Input[T].
func (r reader[T]) StartRead(ctx context.Context) (T, error) {
	c := r.core
	var zero T

	if c.sharedRead {
		if err := c.readMu.Claim(ctx); err != nil {
			return zero, interruptedError(err)
		}
	}

	c.mu.Lock()
	if c.extendedReadInProgress {
		c.mu.Unlock()
		if c.sharedRead {
			c.readMu.Release()
		}
		panic("csp: StartRead called while an extended read is already in progress")
	}

	var v T
	var err error
	if c.store != nil {
		v, err = c.readBufferedLocked(ctx, true)
	} else {
		v, err = c.readUnbufferedLocked(ctx, true)
	}
	c.mu.Unlock()

	if err != nil && c.sharedRead {
		c.readMu.Release()
	}
	return v, err
}

// EndRead implements Input[T].
func (r reader[T]) EndRead() {
	c := r.core

	c.mu.Lock()
	if !c.extendedReadInProgress {
		c.mu.Unlock()
		panic("csp: EndRead called without a matching StartRead")
	}
	c.extendedReadInProgress = false

	if c.store != nil {
		c.store.EndGet()
	} else {
		c.hasData = false
		var zero T
		c.value = zero
	}
	c.broadcast()
	c.mu.Unlock()

	if c.sharedRead {
		c.readMu.Release()
	}
}

// Guard implements Input[T]. See the Input.Guard doc for why this check
// cannot be bypassed by asserting to a different interface shape: it is
// performed here, inside the one method both shared and non-shared read
// ends funnel through, against the channel's actual multiplicity.
func (r reader[T]) Guard() (guard.Guard, error) {
	if r.core.sharedRead {
		return nil, newError(MisuseALT, "csp: cannot mount ALT on a shared read end")
	}
	return &readGuard[T]{core: r.core}, nil
}

// Poison implements Input[T].
func (r reader[T]) Poison(strength int) {
	r.core.poison(strength)
}
