package readlog

import "time"

// AppendResult describes the outcome of an append to a log file.
type AppendResult struct {
	Path       string
	SizeBefore int64
	SizeAfter  int64

	// Truncated is set when the file is smaller after the write than it was
	// before. The write itself succeeded, so this is a warning.
	Truncated bool

	// Unverified is set when the size could not be read back after the
	// write, so truncation could not be checked.
	Unverified bool
}

// ReadingLog is the on-disk, append-only reading log.
type ReadingLog interface {
	// ResolvePath returns the log file for the category and month of now.
	// It honors an existing per-category subdirectory and is recomputed on
	// every call.
	ResolvePath(category Category, now time.Time) (string, error)

	// HasDateHeader reports whether the tail of the file already contains
	// the date header for date. A missing file has no header.
	HasDateHeader(path string, date time.Time) (bool, error)

	// Append adds entry to the end of the file, creating it and its parent
	// directories as needed. Existing content is never rewritten.
	Append(path string, entry string) (*AppendResult, error)
}
