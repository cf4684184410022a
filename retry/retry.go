// Package retry provides a readlog.Fetcher decorator that retries failed
// fetches with backoff.
package retry

import (
	"context"
	"time"

	"github.com/fwojciec/readlog"
)

// LogFunc receives a printf-style message before each retry.
type LogFunc func(format string, args ...any)

// DefaultDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultDelays() []time.Duration {
	return Delays(3)
}

// Delays returns n backoff delays starting at 1s and doubling each time.
func Delays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}

var _ readlog.Fetcher = (*Fetcher)(nil)

// Fetcher retries a wrapped Fetcher with backoff.
type Fetcher struct {
	next   readlog.Fetcher
	delays []time.Duration
	logger LogFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDelays sets the waits between attempts. One retry is made per delay,
// so an empty slice disables retrying. Defaults to DefaultDelays().
func WithDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithLogFunc sets a function called before each retry.
func WithLogFunc(logger LogFunc) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher wraps next with retry logic.
func NewFetcher(next readlog.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:   next,
		delays: DefaultDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch calls the wrapped fetcher and, on failure, tries again after each
// configured delay. Once the delays are used up the last error is returned.
// If ctx ends while waiting, its error is returned instead.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	for i, delay := range f.delays {
		if err == nil {
			break
		}
		if f.logger != nil {
			f.logger("retry %s in %s (attempt %d of %d): %v", url, delay, i+2, len(f.delays)+1, err)
		}
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
		html, err = f.next.Fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
