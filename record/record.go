// Package record runs the reading-log pipeline for one URL: fetch, extract,
// classify, resolve the log file, format the entry and append it.
package record

import (
	"context"
	"time"

	"github.com/fwojciec/readlog"
	"golang.org/x/sync/errgroup"
)

// Request describes one URL to log.
type Request struct {
	URL string

	// Category forces the category when set. The word count is then not
	// consulted, even if it disagrees.
	Category readlog.Category

	// DryRun formats the entry without appending it.
	DryRun bool
}

// Result describes what was logged.
type Result struct {
	Entry    readlog.Entry
	Text     string // formatted entry as written
	Path     string
	Metadata *readlog.Metadata

	// Append is nil for dry runs.
	Append *readlog.AppendResult
}

// Recorder logs URLs to the reading log through injected collaborators.
type Recorder struct {
	Fetcher  readlog.Fetcher
	Text     readlog.TextExtractor
	Metadata readlog.MetadataExtractor
	Log      readlog.ReadingLog

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Record fetches req.URL and appends an entry for it to the reading log.
// Fetch failures are returned as EFETCH errors; file system failures are
// returned wrapped. A shrunken log file is reported in Result.Append, not
// as an error.
func (r *Recorder) Record(ctx context.Context, req Request) (*Result, error) {
	html, err := r.Fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, readlog.Errorf(readlog.EFETCH, "failed to fetch URL: %v", err)
	}

	// Text and metadata extraction are independent reads of the same HTML.
	var (
		text string
		meta *readlog.Metadata
		g    errgroup.Group
	)
	g.Go(func() error {
		var err error
		text, err = r.Text.ExtractText(html)
		return err
	})
	g.Go(func() error {
		var err error
		meta, err = r.Metadata.ExtractMetadata(html)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	wordCount := readlog.CountWords(text)

	category := req.Category
	if category == "" {
		category = readlog.Classify(wordCount)
	}

	now := r.now()
	path, err := r.Log.ResolvePath(category, now)
	if err != nil {
		return nil, err
	}

	includeHeader := true
	if category == readlog.Article {
		found, err := r.Log.HasDateHeader(path, now)
		if err != nil {
			return nil, err
		}
		includeHeader = !found
	}

	entry := readlog.Entry{
		Category:          category,
		Title:             meta.Title,
		Author:            meta.Author,
		WordCount:         wordCount,
		URL:               req.URL,
		Date:              now,
		IncludeDateHeader: includeHeader,
	}

	result := &Result{
		Entry:    entry,
		Text:     readlog.FormatEntry(entry),
		Path:     path,
		Metadata: meta,
	}

	if req.DryRun {
		return result, nil
	}

	result.Append, err = r.Log.Append(path, result.Text)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Recorder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
