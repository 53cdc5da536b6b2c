package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`critical sections on one key never overlap`, func(t *testing.T) {
		var inside int32
		var overlaps int32
		var wg sync.WaitGroup
		for k := 0; k < 10; k++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.Background(), "test-overlap", 5*time.Second, func() error {
					if atomic.AddInt32(&inside, 1) > 1 {
						atomic.AddInt32(&overlaps, 1)
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					return nil
				})
				require.Nil(t, err)
				require.True(t, ok)
			}()
		}
		wg.Wait()
		require.Zero(t, atomic.LoadInt32(&overlaps))
	})

	t.Run(`different keys do not block each other`, func(t *testing.T) {
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "test-key-a", time.Second, func() error {
				<-release
				return nil
			})
		}()
		time.Sleep(20 * time.Millisecond)

		done := make(chan struct{})
		go func() {
			ok, err := WithDelay(context.Background(), "test-key-b", time.Second, func() error { return nil })
			require.Nil(t, err)
			require.True(t, ok)
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			t.Fatal("independent key was blocked")
		}
		close(release)
	})

	t.Run(`waiting past the deadline reports failure without running`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "test-deadline", 5*time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		ran := false
		ok, err := WithDelay(context.Background(), "test-deadline", 100*time.Millisecond, func() error {
			ran = true
			return nil
		})
		require.Nil(t, err)
		require.False(t, ok)
		require.False(t, ran)
		close(release)
	})

	t.Run(`cancelled context stops the wait`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "test-cancel", 5*time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, err := WithDelay(ctx, "test-cancel", 5*time.Second, func() error { return nil })
		require.Nil(t, err)
		require.False(t, ok)
		close(release)
	})

	t.Run(`the callback error is passed through`, func(t *testing.T) {
		wantErr := context.DeadlineExceeded
		ok, err := WithDelay(context.Background(), "test-error", time.Second, func() error { return wantErr })
		require.True(t, ok)
		require.Equal(t, wantErr, err)
	})
}
