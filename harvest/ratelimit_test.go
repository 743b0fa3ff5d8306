package harvest_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/ldharvest/harvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewDomainLimiter(2)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("paces repeat requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewDomainLimiter(20) // 50ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("domains are paced independently", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewDomainLimiter(2)

		require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))

		// A different host still has its full token available.
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "api.example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns when the context expires mid-wait", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewDomainLimiter(0.5) // 2s between requests

		require.NoError(t, limiter.Wait(context.Background(), "docs.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "docs.example.com"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		limiter := harvest.NewDomainLimiter(200)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = limiter.Wait(context.Background(), "docs.example.com")
			}()
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
	})
}
