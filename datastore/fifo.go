package datastore

// fifo is a fixed-capacity ring buffer store. Unlike a lock-free ring, it
// relies entirely on the caller (the channel monitor) for synchronization,
// so it tracks read/write cursors as plain ints rather than atomics.
//
// The read/write cursor and modulo-capacity indexing mirror the ring buffer
// in go-catrate's rate limiter, generalized from a power-of-two mask to an
// arbitrary capacity via modulo, since buffered-channel capacities are not
// constrained to powers of two.
type fifo[T any] struct {
	buf      []T
	r, w     int // r == w && full == false means empty
	full     bool
	startGet bool // true between StartGet and EndGet
}

// NewFIFO returns a fixed-capacity Store that delivers values in the order
// they were Put, blocking (via the channel kernel's wait loop) once it
// reports Full.
func NewFIFO[T any](capacity int) Store[T] {
	requirePositive("FIFO", capacity)
	return &fifo[T]{buf: make([]T, capacity)}
}

func (f *fifo[T]) cap() int { return len(f.buf) }

func (f *fifo[T]) len() int {
	if f.full {
		return f.cap()
	}
	if f.w >= f.r {
		return f.w - f.r
	}
	return f.cap() - f.r + f.w
}

func (f *fifo[T]) State() State {
	switch {
	case f.len() == 0:
		return Empty
	case f.full:
		return Full
	default:
		return Partial
	}
}

func (f *fifo[T]) Put(v T) {
	if f.State() == Full {
		panic("datastore: fifo: put into full store")
	}
	f.buf[f.w] = v
	f.w = (f.w + 1) % f.cap()
	f.full = f.w == f.r
}

func (f *fifo[T]) Get() T {
	if f.startGet {
		panic("datastore: fifo: get called while a StartGet is in progress")
	}
	if f.State() == Empty {
		panic("datastore: fifo: get from empty store")
	}
	v := f.buf[f.r]
	var zero T
	f.buf[f.r] = zero
	f.r = (f.r + 1) % f.cap()
	f.full = false
	return v
}

func (f *fifo[T]) StartGet() T {
	if f.startGet {
		panic("datastore: fifo: StartGet called twice without EndGet")
	}
	if f.State() == Empty {
		panic("datastore: fifo: StartGet from empty store")
	}
	f.startGet = true
	return f.buf[f.r]
}

func (f *fifo[T]) EndGet() {
	if !f.startGet {
		panic("datastore: fifo: EndGet without a matching StartGet")
	}
	f.startGet = false
	var zero T
	f.buf[f.r] = zero
	f.r = (f.r + 1) % f.cap()
	f.full = false
}

func (f *fifo[T]) Clone() Store[T] {
	return &fifo[T]{buf: make([]T, len(f.buf))}
}
