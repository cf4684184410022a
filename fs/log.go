// Package fs provides the file-based reading log.
package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/readlog"
)

// HeaderScanLines is how many trailing lines are searched for an existing
// date header.
const HeaderScanLines = 20

// Ensure Log implements readlog.ReadingLog at compile time.
var _ readlog.ReadingLog = (*Log)(nil)

// Log is a reading log stored as monthly plain-text files:
//
//	<base>/<year>/[articles/|books/]<month>-articles.txt
//	<base>/<year>/[articles/|books/]<month>-books.txt
//
// Files are only ever appended to.
type Log struct {
	baseDir string
	stat    func(name string) (os.FileInfo, error)
}

// NewLog creates a new Log rooted at baseDir.
func NewLog(baseDir string) *Log {
	return &Log{baseDir: baseDir, stat: os.Stat}
}

// FileName returns the monthly log file name, e.g. "march-articles.txt".
func FileName(category readlog.Category, now time.Time) string {
	month := strings.ToLower(now.Format("January"))
	return month + "-" + category.Subdir() + ".txt"
}

// ResolvePath returns the log file for category in the month of now,
// creating the year directory if needed. A file inside the category
// subdirectory wins, then the subdirectory itself even when the file does
// not exist yet, then the year directory.
func (l *Log) ResolvePath(category readlog.Category, now time.Time) (string, error) {
	yearDir := filepath.Join(l.baseDir, strconv.Itoa(now.Year()))
	if err := os.MkdirAll(yearDir, 0755); err != nil {
		return "", fmt.Errorf("creating year directory: %w", err)
	}

	filename := FileName(category, now)
	subdir := filepath.Join(yearDir, category.Subdir())
	subdirPath := filepath.Join(subdir, filename)

	if _, err := os.Stat(subdirPath); err == nil {
		return subdirPath, nil
	}

	if info, err := os.Stat(subdir); err == nil && info.IsDir() {
		return subdirPath, nil
	}

	return filepath.Join(yearDir, filename), nil
}

// HasDateHeader reports whether any of the last HeaderScanLines lines of the
// file contains the date header for date. A missing file has no header.
func (l *Log) HasDateHeader(path string, date time.Time) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("reading log file: %w", err)
	}
	defer f.Close()

	lines, err := tailLines(f, HeaderScanLines)
	if err != nil {
		return false, fmt.Errorf("reading log file: %w", err)
	}

	header := readlog.DateHeader(date)
	for _, line := range lines {
		if strings.Contains(line, header) {
			return true, nil
		}
	}
	return false, nil
}

// tailLines returns at most the last n lines read from r.
func tailLines(r io.Reader, n int) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
			if len(lines) > n {
				lines = lines[1:]
			}
		}
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
	}
}

// Append writes entry to the end of the file at path. Parent directories
// and the file are created as needed; existing content is never rewritten.
// When the file does not end in a newline the entry is pushed onto a new
// line. If the file shrinks during the write, the result is marked
// Truncated; if its size cannot be read back, it is marked Unverified.
func (l *Log) Append(path string, entry string) (*readlog.AppendResult, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	result := &readlog.AppendResult{Path: path}

	info, err := l.stat(path)
	existed := err == nil
	if existed {
		result.SizeBefore = info.Size()
	}

	if existed && result.SizeBefore > 0 && !strings.HasPrefix(entry, "\n") {
		last, err := lastByte(path, result.SizeBefore)
		if err == nil && last != '\n' {
			entry = "\n" + entry
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing log file: %w", err)
	}

	info, err = l.stat(path)
	if err != nil {
		result.Unverified = true
		return result, nil
	}
	result.SizeAfter = info.Size()
	if existed && result.SizeBefore > 0 && result.SizeAfter < result.SizeBefore {
		result.Truncated = true
	}

	return result, nil
}

// lastByte returns the final byte of a file of the given size.
func lastByte(path string, size int64) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, size-1); err != nil {
		return 0, err
	}
	return buf[0], nil
}
