package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readlog"
)

// Ensure LoggingLog implements readlog.ReadingLog.
var _ readlog.ReadingLog = (*LoggingLog)(nil)

// LoggingLog wraps a ReadingLog with logging.
type LoggingLog struct {
	next   readlog.ReadingLog
	logger *slog.Logger
}

// NewLoggingLog creates a new LoggingLog.
func NewLoggingLog(next readlog.ReadingLog, logger *slog.Logger) *LoggingLog {
	return &LoggingLog{next: next, logger: logger}
}

// ResolvePath logs the resolved path.
func (l *LoggingLog) ResolvePath(category readlog.Category, now time.Time) (path string, err error) {
	defer func() {
		l.logger.Debug("resolve path",
			"category", string(category),
			"path", path,
			"err", err,
		)
	}()
	return l.next.ResolvePath(category, now)
}

// HasDateHeader logs whether the header was found.
func (l *LoggingLog) HasDateHeader(path string, date time.Time) (found bool, err error) {
	defer func() {
		l.logger.Debug("date header scan",
			"path", path,
			"header", readlog.DateHeader(date),
			"found", found,
			"err", err,
		)
	}()
	return l.next.HasDateHeader(path, date)
}

// Append logs the write and the size check.
func (l *LoggingLog) Append(path string, entry string) (*readlog.AppendResult, error) {
	begin := time.Now()
	result, err := l.next.Append(path, entry)
	if err != nil {
		l.logger.Error("append", "path", path, "err", err)
		return nil, err
	}

	l.logger.Info("append",
		"path", path,
		"bytes", len(entry),
		"size_before", result.SizeBefore,
		"size_after", result.SizeAfter,
		"truncated", result.Truncated,
		"unverified", result.Unverified,
		"duration", time.Since(begin),
	)
	return result, nil
}
