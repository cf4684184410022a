package retry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/mock"
	"github.com/fwojciec/readlog/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements readlog.Fetcher.
var _ readlog.Fetcher = (*retry.Fetcher)(nil)

func noDelays(n int) []time.Duration {
	return make([]time.Duration, n)
}

// failingFetcher fails the first failures calls and then returns the URL
// wrapped in a paragraph. The returned counter reports the calls made.
func failingFetcher(failures int) (*mock.Fetcher, *int) {
	calls := 0
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			calls++
			if calls <= failures {
				return "", fmt.Errorf("failure %d", calls)
			}
			return "<p>" + url + "</p>", nil
		},
	}, &calls
}

func TestDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, retry.Delays(0))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, retry.DefaultDelays())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}, retry.Delays(4))
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns first success without retrying", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingFetcher(0)

		html, err := retry.NewFetcher(inner, retry.WithDelays(noDelays(3))).
			Fetch(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "<p>https://example.com/a</p>", html)
		assert.Equal(t, 1, *calls)
	})

	t.Run("retries until success and logs each retry", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingFetcher(2)
		var logged []string
		fetcher := retry.NewFetcher(inner,
			retry.WithDelays(noDelays(3)),
			retry.WithLogFunc(func(format string, args ...any) {
				logged = append(logged, fmt.Sprintf(format, args...))
			}),
		)

		html, err := fetcher.Fetch(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "<p>https://example.com/a</p>", html)
		assert.Equal(t, 3, *calls)
		require.Len(t, logged, 2)
		assert.Contains(t, logged[0], "attempt 2 of 4")
		assert.Contains(t, logged[0], "failure 1")
		assert.Contains(t, logged[1], "attempt 3 of 4")
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingFetcher(10)

		_, err := retry.NewFetcher(inner, retry.WithDelays(noDelays(2))).
			Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, "failure 3", err.Error())
		assert.Equal(t, 3, *calls)
	})

	t.Run("no delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		inner, calls := failingFetcher(10)

		_, err := retry.NewFetcher(inner, retry.WithDelays(nil)).
			Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, 1, *calls)
	})

	t.Run("stops waiting when the context ends", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				calls++
				cancel()
				return "", errors.New("boom")
			},
		}

		_, err := retry.NewFetcher(inner, retry.WithDelays([]time.Duration{time.Hour})).
			Fetch(ctx, "https://example.com")

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	inner := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}

	require.NoError(t, retry.NewFetcher(inner).Close())
	assert.True(t, closed)
}
