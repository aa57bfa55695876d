package scrape_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/artext/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "brunch.co.kr")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "brunch.co.kr"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "brunch.co.kr")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "brunch.co.kr"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "velog.io")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("does not limit with non-positive rate", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background(), "velog.io"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "medium.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "medium.com")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests are serialized per domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "medium.com"); err == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}

func TestDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "yozm.wishket.com", scrape.Domain("https://Yozm.Wishket.com/magazine/detail/3005/"))
	assert.Equal(t, "velog.io", scrape.Domain("https://velog.io:443/@a/b"))
	assert.Equal(t, "not-a-url", scrape.Domain("not-a-url"))
}
