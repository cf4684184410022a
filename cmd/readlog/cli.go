package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/record"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Recorder *record.Recorder
}

// LogCmd logs a single URL to the reading log.
type LogCmd struct {
	URL      string
	Category readlog.Category // empty means classify by word count
	DryRun   bool
}

// Run records the URL and reports progress on stdout.
func (c *LogCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Fetching content from: %s\n", c.URL)

	result, err := deps.Recorder.Record(deps.Ctx, record.Request{
		URL:      c.URL,
		Category: c.Category,
		DryRun:   c.DryRun,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Word count: %d\n", result.Entry.WordCount)
	fmt.Fprintf(deps.Stdout, "Title: %s\n", result.Entry.Title)
	if result.Metadata.HasAuthor() {
		fmt.Fprintf(deps.Stdout, "Author: %s\n", *result.Metadata.Author)
	}
	fmt.Fprintf(deps.Stdout, "Content type: %s\n", result.Entry.Category)

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Would write to: %s\n", result.Path)
		fmt.Fprint(deps.Stdout, result.Text)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Writing to: %s\n", result.Path)
	if a := result.Append; a != nil {
		switch {
		case a.Unverified:
			fmt.Fprintf(deps.Stderr, "Warning: could not verify the write to %s\n", result.Path)
		case a.Truncated:
			fmt.Fprintf(deps.Stderr, "Warning: %s shrank from %d to %d bytes while appending\n",
				result.Path, a.SizeBefore, a.SizeAfter)
		}
	}
	fmt.Fprintf(deps.Stdout, "✓ Successfully logged to %s\n", result.Path)
	return nil
}
