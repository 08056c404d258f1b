package csp

import (
	"context"

	"github.com/joeycumines/go-csp/datastore"
)

// Write implements Output[T].
func (w writer[T]) Write(ctx context.Context, value T) error {
	c := w.core

	if c.sharedWrite {
		if err := c.writeMu.Claim(ctx); err != nil {
			return interruptedError(err)
		}
		defer c.writeMu.Release()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		return c.writeBufferedLocked(ctx, value)
	}
	return c.writeUnbufferedLocked(ctx, value)
}

func (c *core[T]) writeBufferedLocked(ctx context.Context, value T) error {
	for c.store.State() == datastore.Full {
		if err := c.checkPoisonLocked(c.writeImmunity); err != nil {
			return err
		}
		if err := c.waitLocked(ctx); err != nil {
			return interruptedError(err)
		}
	}
	if err := c.checkPoisonLocked(c.writeImmunity); err != nil {
		return err
	}
	c.store.Put(value)
	c.broadcast()
	return nil
}

func (c *core[T]) writeUnbufferedLocked(ctx context.Context, value T) error {
	for c.hasData {
		if err := c.checkPoisonLocked(c.writeImmunity); err != nil {
			return err
		}
		if err := c.waitLocked(ctx); err != nil {
			return interruptedError(err)
		}
	}
	if err := c.checkPoisonLocked(c.writeImmunity); err != nil {
		return err
	}

	c.value = value
	c.hasData = true
	c.broadcast()

	// Block until a reader takes the value (Read clears hasData
	// immediately; an extended rendezvous via StartRead/EndRead keeps
	// hasData true, hence this writer blocked, until EndRead). Once a
	// reader has committed to an extended rendezvous, poison and
	// cancellation no longer retract the offer: the matching EndRead
	// always completes the handoff, per the write-returns-after-EndRead
	// invariant.
	for c.hasData {
		if !c.extendedReadInProgress {
			if err := c.checkPoisonLocked(c.writeImmunity); err != nil {
				// retract the offer: no reader has taken it yet.
				c.hasData = false
				var zero T
				c.value = zero
				c.broadcast()
				return err
			}
		}
		if err := c.waitLocked(ctx); err != nil {
			if c.hasData && !c.extendedReadInProgress {
				// retract the offer: no reader has taken it yet.
				c.hasData = false
				var zero T
				c.value = zero
				c.broadcast()
			}
			return interruptedError(err)
		}
	}
	return nil
}

// Poison implements Output[T].
func (w writer[T]) Poison(strength int) {
	w.core.poison(strength)
}
