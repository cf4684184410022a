package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/fs"
	"github.com/fwojciec/readlog/goquery"
	readloghttp "github.com/fwojciec/readlog/http"
	"github.com/fwojciec/readlog/readability"
	"github.com/fwojciec/readlog/record"
	"github.com/fwojciec/readlog/retry"
	"github.com/fwojciec/readlog/rod"
	readlogslog "github.com/fwojciec/readlog/slog"
	"github.com/fwojciec/readlog/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the fetcher selected by --fetcher when set.
	// The caller owns it and is responsible for closing it.
	Fetcher readlog.Fetcher

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readlog"),
		kong.Description("Append a web page to the monthly reading log"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	var category readlog.Category
	if cli.Type != "" {
		if category, err = readlog.ParseCategory(cli.Type); err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli)
		if err != nil {
			if cli.Fetcher == "browser" {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --fetcher http")
			}
			return err
		}
		defer fetcher.Close()
	}

	if cli.Retries > 0 {
		fetcher = retry.NewFetcher(fetcher,
			retry.WithDelays(retry.Delays(cli.Retries)),
			retry.WithLogFunc(func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			}),
		)
	}

	text, metadata := newExtractors(cli.Extractor)

	now := m.Now
	if now == nil {
		now = time.Now
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Recorder: &record.Recorder{
			Fetcher:  readlogslog.NewLoggingFetcher(fetcher, logger),
			Text:     text,
			Metadata: metadata,
			Log:      readlogslog.NewLoggingLog(fs.NewLog(cli.BaseDir), logger),
			Now:      now,
		},
	}

	cmd := &LogCmd{
		URL:      cli.URL,
		Category: category,
		DryRun:   cli.DryRun,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Type        string        `short:"t" placeholder:"article|book" help:"Force the content type instead of classifying by word count"`
	BaseDir     string        `short:"b" default:"." env:"READLOG_BASE_DIR" help:"Reading log root directory"`
	Fetcher     string        `default:"browser" enum:"browser,http" help:"How to fetch the page (browser, http)"`
	Extractor   string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"How to extract text and metadata (heuristic, readability, trafilatura)"`
	Timeout     time.Duration `default:"30s" help:"Fetch timeout"`
	RenderDelay time.Duration `default:"2s" help:"Time to let dynamic content settle after load (browser only)"`
	Retries     int           `default:"0" help:"Number of fetch retries with backoff"`
	DryRun      bool          `short:"n" help:"Print the entry without writing it"`
	Verbose     bool          `short:"v" help:"Log debug output to stderr"`
	URL         string        `arg:"" required:"" help:"URL of the page that was read"`
}

// newFetcher creates the fetcher selected on the command line.
func newFetcher(cli *CLI) (readlog.Fetcher, error) {
	if cli.Fetcher == "http" {
		return readloghttp.NewFetcher(readloghttp.WithTimeout(cli.Timeout)), nil
	}
	f, err := rod.NewFetcher(
		rod.WithFetchTimeout(cli.Timeout),
		rod.WithRenderDelay(cli.RenderDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return f, nil
}

// newExtractors creates the extractors selected on the command line. The
// library-backed extractors fall back to the heuristic ones.
func newExtractors(name string) (readlog.TextExtractor, readlog.MetadataExtractor) {
	text := goquery.NewTextExtractor()
	metadata := goquery.NewMetadataExtractor()

	switch name {
	case "readability":
		e := readability.NewExtractor()
		e.Fallback = text
		e.FallbackMetadata = metadata
		return e, e
	case "trafilatura":
		e := trafilatura.NewExtractor()
		e.Fallback = text
		e.FallbackMetadata = metadata
		return e, e
	default:
		return text, metadata
	}
}
