package guard

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedCounter struct{ n atomic.Int32 }

func (s *schedCounter) Schedule() { s.n.Add(1) }

func TestSkip_AlwaysReady(t *testing.T) {
	g := Skip()
	var a schedCounter
	assert.True(t, g.Enable(&a))
	assert.True(t, g.Disable())
	assert.Zero(t, a.n.Load())
}

func TestTimeout_ReadyImmediatelyWhenPast(t *testing.T) {
	g := Deadline(time.Now().Add(-time.Second))
	var a schedCounter
	assert.True(t, g.Enable(&a))
	assert.True(t, g.Disable())
}

func TestTimeout_FiresLater(t *testing.T) {
	g := Timeout(10 * time.Millisecond)
	var a schedCounter
	require.False(t, g.Enable(&a))
	assert.Equal(t, int32(0), a.n.Load())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), a.n.Load())
	assert.True(t, g.Disable())
}

func TestTimeout_DisableStopsTimer(t *testing.T) {
	g := Timeout(20 * time.Millisecond)
	var a schedCounter
	require.False(t, g.Enable(&a))
	assert.False(t, g.Disable()) // disabled before the deadline: not ready

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, a.n.Load(), "Disable must stop the timer so it never fires late")
}

func TestBarrier_ReadyOnlyOnceAllArrive(t *testing.T) {
	const n = 3
	g, _ := Barrier(n)

	guards := make([]Guard, n)
	for i := range guards {
		guards[i] = g // every party shares the same Guard/state in this simplified test
	}

	var scheds [n]schedCounter
	var wg sync.WaitGroup
	ready := make([]bool, n)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			ready[i] = guards[i].Enable(&scheds[i])
		}(i)
	}
	close(start)
	wg.Wait()

	// the last arrival's Enable reports ready; every earlier arrival's
	// Enable reports not-ready and is then woken via Schedule.
	readyCount := 0
	for i, r := range ready {
		if r || scheds[i].n.Load() == 1 {
			readyCount++
		}
	}
	assert.Equal(t, n, readyCount, "all n parties become ready in the same round")
}

func TestBarrier_DisableWithoutCompletingRetractsArrival(t *testing.T) {
	const n = 3
	g, _ := Barrier(n)

	// first party enables and then backs out (e.g. its select round was won
	// by a different guard) before the other n-1 parties show up.
	var a schedCounter
	require.False(t, g.Enable(&a))
	assert.False(t, g.Disable())

	// two further parties now arrive: if the backed-out party's arrival had
	// not been retracted, this would wrongly complete the round (3rd of 3)
	// instead of leaving one party still waiting.
	var b, c schedCounter
	require.False(t, g.Enable(&b))
	ready := g.Enable(&c)
	assert.False(t, ready, "round must not complete: the first party backed out without arriving")
	assert.Zero(t, a.n.Load(), "a backed-out party's stale Alt must never be scheduled")

	// completing the round for real now takes one more arrival.
	assert.True(t, g.Enable(&a))
	assert.Equal(t, int32(1), b.n.Load())
	assert.Equal(t, int32(1), c.n.Load())
}

func TestBarrier_CloseUnblocksWaiters(t *testing.T) {
	g, closeFn := Barrier(2)
	var a schedCounter
	require.False(t, g.Enable(&a), "only one of two parties arrived")
	closeFn()
	assert.Equal(t, int32(1), a.n.Load(), "close schedules every still-waiting party")

	var b schedCounter
	assert.True(t, g.Enable(&b), "a closed barrier is ready without further arrivals")
}
