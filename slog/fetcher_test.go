package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/readlog/mock"
	readlogslog "github.com/fwojciec/readlog/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs the page size at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		page := "<html><title>Essay</title></html>"
		f := readlogslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return page, nil },
		}, logger)

		html, err := f.Fetch(context.Background(), "https://example.com/essay")

		require.NoError(t, err)
		assert.Equal(t, page, html)
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://example.com/essay")
		assert.Contains(t, out, "bytes=33")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs failures at error and passes them through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		fetchErr := errors.New("navigation timed out")
		f := readlogslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "", fetchErr },
		}, logger)

		_, err := f.Fetch(context.Background(), "https://example.com/slow")

		assert.ErrorIs(t, err, fetchErr)
		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, `err="navigation timed out"`)
	})

	t.Run("info lines are hidden at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		f := readlogslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<p>ok</p>", nil },
		}, logger)

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := readlogslog.NewLoggingFetcher(&mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
