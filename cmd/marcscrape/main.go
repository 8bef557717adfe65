package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mjanowski/marc"
	"github.com/mjanowski/marc/fs"
	"github.com/mjanowski/marc/goquery"
	"github.com/mjanowski/marc/htmltomarkdown"
	marchttp "github.com/mjanowski/marc/http"
	"github.com/mjanowski/marc/scrape"
	marcslog "github.com/mjanowski/marc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("marcscrape"),
		kong.Description("Build the MARC field datasets from the Library of Congress documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	var fetcher marc.Fetcher = marchttp.NewFetcher(marchttp.WithTimeout(cli.Timeout))
	if cli.Debug {
		fetcher = marcslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	converter := htmltomarkdown.NewConverter()

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Index:       goquery.NewIndexParser(),
		Fields:      goquery.NewFieldParser(converter),
		Limiter:     scrape.NewHostLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
	}

	dir := cli.Output
	if dir == "" {
		dir = fs.DefaultDir()
	}
	var writer marc.DatasetWriter = marcslog.NewLoggingWriter(fs.NewStore(dir), logger)

	cmd := &ScrapeCmd{Dir: dir}
	return cmd.Run(ctx, scraper, writer, stdout, stderr)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output      string        `short:"o" help:"Output directory for the dataset files (default: $MARC_DATA or ~/.marc)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per page"`
	RPS         float64       `default:"2" help:"Maximum requests per second"`
	Debug       bool          `help:"Log every fetch and write"`
}
