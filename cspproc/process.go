package cspproc

import (
	"context"
	"fmt"

	"github.com/joeycumines/go-csp/cspobserve"
	"golang.org/x/sync/errgroup"
)

// Process is one participant in a PAR: a unit of work that runs until ctx
// is done or it completes (or fails) on its own.
type Process interface {
	Run(ctx context.Context) error
}

// Named is implemented by a Process that wants a specific name to appear
// in observer events, instead of an index-derived one.
type Named interface {
	Name() string
}

// ProcessFunc adapts a plain function to Process.
type ProcessFunc func(ctx context.Context) error

func (f ProcessFunc) Run(ctx context.Context) error { return f(ctx) }

// namedFunc pairs a ProcessFunc with an explicit name, for use with
// Parallel's observer events.
type namedFunc struct {
	name string
	fn   ProcessFunc
}

func (n namedFunc) Run(ctx context.Context) error { return n.fn(ctx) }
func (n namedFunc) Name() string                  { return n.name }

// NamedFunc wraps fn as a Process that reports as name to the observer.
func NamedFunc(name string, fn func(ctx context.Context) error) Process {
	return namedFunc{name: name, fn: fn}
}

// Parallel runs every process concurrently, the way a CSP PAR construct
// runs its branches: it blocks until all have returned, then returns the
// first non-nil error (if any), having already canceled the context
// passed to every other process as soon as one failed.
func Parallel(ctx context.Context, obs cspobserve.Observer, procs ...Process) error {
	if obs == nil {
		obs = cspobserve.NoOp()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range procs {
		name := processName(i, p)
		g.Go(func() error {
			obs.ProcessStarted(name)
			err := p.Run(gctx)
			obs.ProcessStopped(name, err)
			return err
		})
	}
	return g.Wait()
}

// ParallelFunc is Parallel for callers who would otherwise wrap every
// function in ProcessFunc themselves; each fn runs unnamed (reported to the
// observer as "proc-N").
func ParallelFunc(ctx context.Context, obs cspobserve.Observer, fns ...func(ctx context.Context) error) error {
	procs := make([]Process, len(fns))
	for i, fn := range fns {
		procs[i] = ProcessFunc(fn)
	}
	return Parallel(ctx, obs, procs...)
}

func processName(i int, p Process) string {
	if n, ok := p.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("proc-%d", i)
}
