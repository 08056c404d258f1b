package fairmutex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutex_SingleClaimer(t *testing.T) {
	m := New()
	require.NoError(t, m.Claim(context.Background()))
	m.Release()
	require.NoError(t, m.Claim(context.Background()))
	m.Release()
}

func TestMutex_ReleaseUnclaimedPanics(t *testing.T) {
	m := New()
	assert.Panics(t, m.Release)
}

func TestMutex_FIFOOrdering(t *testing.T) {
	m := New()
	require.NoError(t, m.Claim(context.Background()))

	const n = 20
	order := make(chan int, n)
	started := make(chan struct{}, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started <- struct{}{}
			// stagger registration so arrival order is deterministic
			time.Sleep(time.Duration(i) * time.Millisecond)
			require.NoError(t, m.Claim(context.Background()))
			order <- i
			m.Release()
		}(i)
	}

	for i := 0; i < n; i++ {
		<-started
	}
	time.Sleep(50 * time.Millisecond) // let every goroutine reach Claim and enqueue
	m.Release()
	wg.Wait()
	close(order)

	var got []int
	for v := range order {
		got = append(got, v)
	}
	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i, v, "claimers must be served in arrival order")
	}
}

func TestMutex_ClaimCanceled(t *testing.T) {
	m := New()
	require.NoError(t, m.Claim(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := m.Claim(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	m.Release()
	require.NoError(t, m.Claim(context.Background()))
}

func TestMutex_CanceledClaimerDoesNotBlockQueue(t *testing.T) {
	m := New()
	require.NoError(t, m.Claim(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- m.Claim(ctx) }()
	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	doneCh := make(chan struct{})
	go func() {
		require.NoError(t, m.Claim(context.Background()))
		close(doneCh)
	}()
	m.Release()
	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("next claimer never unblocked")
	}
}
