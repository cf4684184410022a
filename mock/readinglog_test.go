package mock_test

import (
	"testing"
	"time"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingLog_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ReadingLog is expected
	var _ readlog.ReadingLog = &mock.ReadingLog{}
}

func TestReadingLog_Append(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AppendFn", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotEntry string
		l := &mock.ReadingLog{
			AppendFn: func(path string, entry string) (*readlog.AppendResult, error) {
				gotPath, gotEntry = path, entry
				return &readlog.AppendResult{Path: path}, nil
			},
		}

		result, err := l.Append("2024/march-articles.txt", "-- Read: X\n")

		require.NoError(t, err)
		assert.Equal(t, "2024/march-articles.txt", result.Path)
		assert.Equal(t, "2024/march-articles.txt", gotPath)
		assert.Equal(t, "-- Read: X\n", gotEntry)
	})
}

func TestReadingLog_ResolvePath(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	l := &mock.ReadingLog{
		ResolvePathFn: func(category readlog.Category, at time.Time) (string, error) {
			assert.Equal(t, readlog.Book, category)
			assert.Equal(t, now, at)
			return "2024/march-books.txt", nil
		},
	}

	got, err := l.ResolvePath(readlog.Book, now)

	require.NoError(t, err)
	assert.Equal(t, "2024/march-books.txt", got)
}
