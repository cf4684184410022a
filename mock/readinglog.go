package mock

import (
	"time"

	"github.com/fwojciec/readlog"
)

var _ readlog.ReadingLog = (*ReadingLog)(nil)

// ReadingLog is a mock implementation of readlog.ReadingLog.
type ReadingLog struct {
	ResolvePathFn   func(category readlog.Category, now time.Time) (string, error)
	HasDateHeaderFn func(path string, date time.Time) (bool, error)
	AppendFn        func(path string, entry string) (*readlog.AppendResult, error)
}

func (l *ReadingLog) ResolvePath(category readlog.Category, now time.Time) (string, error) {
	return l.ResolvePathFn(category, now)
}

func (l *ReadingLog) HasDateHeader(path string, date time.Time) (bool, error) {
	return l.HasDateHeaderFn(path, date)
}

func (l *ReadingLog) Append(path string, entry string) (*readlog.AppendResult, error) {
	return l.AppendFn(path, entry)
}
