package csp

import (
	"context"

	"github.com/joeycumines/go-csp/cspobserve"
	"github.com/joeycumines/go-csp/datastore"
	"github.com/joeycumines/go-csp/guard"
)

// Output is the write end of a channel.
type Output[T any] interface {
	// Write blocks until a reader takes value (on a buffered channel: until
	// the store accepts it), the channel is poisoned (against this end), or
	// ctx is done, whichever comes first.
	Write(ctx context.Context, value T) error
	// Poison raises the channel's poison strength to at least strength,
	// visible to any end whose immunity is below it. A channel's poison
	// strength only ever increases.
	Poison(strength int)
}

// Input is the read end of a channel.
type Input[T any] interface {
	// Read blocks until a value is available, the channel is poisoned
	// against this end, or ctx is done, whichever comes first.
	Read(ctx context.Context) (T, error)
	// StartRead begins an extended rendezvous: it blocks exactly like Read,
	// but on an unbuffered channel the writer is not released until the
	// matching EndRead call (on a buffered channel the value stays in the
	// store until EndRead; its writer has already returned). Must
	// be followed by exactly one EndRead before any other operation on
	// this end.
	StartRead(ctx context.Context) (T, error)
	// EndRead completes an extended rendezvous begun by StartRead,
	// releasing the writer. Poison raised during the extended rendezvous
	// is not observed by EndRead itself; it surfaces on the next
	// operation on this end, per this package's read-end poison policy.
	EndRead()
	// Guard returns a guard.Guard usable in an Alternative to wait for
	// this end to become ready to Read, without committing to the read
	// until the Alternative resolves in this guard's favor. Mounting an
	// ALT on a shared read end is a programmer error: Guard reports
	// ErrMisuseALT instead of a Guard in that case, a check performed
	// against the channel's actual multiplicity at call time rather than
	// the static type of the handle, so it cannot be bypassed by
	// asserting to a differently-shaped interface.
	Guard() (guard.Guard, error)
	// Poison raises the channel's poison strength, as Output.Poison.
	Poison(strength int)
}

// reader and writer are the concrete handles returned by the New*
// constructors below. Both multiplicities (plain and shared) are modeled
// by the same type; sharedness lives in core and is enforced by
// core.readMu/writeMu plus the Guard runtime check.
type reader[T any] struct{ core *core[T] }
type writer[T any] struct{ core *core[T] }

var (
	_ Input[int]  = reader[int]{}
	_ Output[int] = writer[int]{}
)

// NewOne2One returns an unbuffered channel with exactly one reader and
// exactly one writer.
func NewOne2One[T any](obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](nil, false, false, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewOne2Any returns an unbuffered channel with exactly one writer, shared
// by any number of readers who compete for each value in FIFO arrival
// order. ALT is not available on the returned read end; Guard reports
// ErrMisuseALT.
func NewOne2Any[T any](obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](nil, true, false, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewAny2One returns an unbuffered channel with exactly one reader, shared
// by any number of writers who compete to hand off each value in FIFO
// arrival order.
func NewAny2One[T any](obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](nil, false, true, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewAny2Any returns an unbuffered channel shared by any number of readers
// and any number of writers. ALT is not available on the returned read
// end.
func NewAny2Any[T any](obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](nil, true, true, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewOne2OneBuffered returns a buffered channel with exactly one reader
// and exactly one writer, backed by store. Panics with an error of Kind
// NullStore if store is nil.
func NewOne2OneBuffered[T any](store datastore.Store[T], obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](requireStore(store), false, false, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewOne2AnyBuffered returns a buffered channel with exactly one writer,
// shared by any number of readers, backed by store. Panics with an error
// of Kind NullStore if store is nil.
func NewOne2AnyBuffered[T any](store datastore.Store[T], obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](requireStore(store), true, false, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewAny2OneBuffered returns a buffered channel with exactly one reader,
// shared by any number of writers, backed by store. Panics with an error
// of Kind NullStore if store is nil.
func NewAny2OneBuffered[T any](store datastore.Store[T], obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](requireStore(store), false, true, obs)
	return reader[T]{c}, writer[T]{c}
}

// NewAny2AnyBuffered returns a buffered channel shared by any number of
// readers and writers, backed by store. Panics with an error of Kind
// NullStore if store is nil.
func NewAny2AnyBuffered[T any](store datastore.Store[T], obs cspobserve.Observer) (Input[T], Output[T]) {
	c := newCore[T](requireStore(store), true, true, obs)
	return reader[T]{c}, writer[T]{c}
}

// requireStore panics with ErrNullStore if store is nil, and otherwise
// returns a fresh Clone of it, so that passing the same prototype Store to
// two constructors never lets the resulting channels share buffer state.
func requireStore[T any](store datastore.Store[T]) datastore.Store[T] {
	if store == nil {
		panic(ErrNullStore)
	}
	return store.Clone()
}
