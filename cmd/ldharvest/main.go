package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ldharvest"
	"github.com/fwojciec/ldharvest/goquery"
	"github.com/fwojciec/ldharvest/harvest"
	ldhttp "github.com/fwojciec/ldharvest/http"
	"github.com/fwojciec/ldharvest/jsonl"
	ldslog "github.com/fwojciec/ldharvest/slog"
	"github.com/fwojciec/ldharvest/yaml"
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
		kong.Name("ldharvest"),
		kong.Description("Extract JSON-LD records from web pages into a JSONL file"),
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

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second

	opts := []ldhttp.Option{ldhttp.WithTimeout(timeout)}
	if cfg.UserAgent != "" {
		opts = append(opts, ldhttp.WithUserAgent(cfg.UserAgent))
	}
	httpFetcher := ldhttp.NewFetcher(opts...)
	defer httpFetcher.Close()

	deps.Writer = jsonl.NewWriter(cfg.Output)

	var fetcher ldharvest.Fetcher = httpFetcher
	var writer ldharvest.RecordWriter = deps.Writer
	var sitemaps ldharvest.SitemapService = ldhttp.NewSitemapService(&nethttp.Client{Timeout: timeout})
	if logger != nil {
		fetcher = ldslog.NewLoggingFetcher(fetcher, logger)
		writer = ldslog.NewLoggingRecordWriter(writer, logger)
		sitemaps = ldslog.NewLoggingSitemapService(sitemaps, logger)
	}

	deps.Sitemaps = sitemaps
	deps.Harvester = &harvest.Harvester{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Writer:    writer,
		Limiter:   harvest.NewDomainLimiter(cfg.Rate),
	}

	cmd := &HarvestCmd{
		URLs:    cfg.URLs,
		Sitemap: cfg.Sitemap,
		Filters: cfg.Filters,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" help:"Output JSONL file path (default wrangles_to_load.jsonl)"`
	Config    string        `short:"c" help:"YAML config file with run settings"`
	Timeout   time.Duration `short:"t" help:"Fetch timeout per page (default 10s)"`
	Rate      float64       `help:"Max requests per second per domain (default 1)"`
	UserAgent string        `help:"User-Agent header for requests"`
	Sitemap   bool          `help:"Treat URLs as site roots and harvest their sitemap pages"`
	Filter    []string      `short:"F" name:"filter" help:"Keep only sitemap URLs matching regex (repeatable)"`
	Verbose   bool          `short:"v" help:"Log fetch and write details to stderr"`
	URLs      []string      `arg:"" optional:"" name:"url" help:"Page URLs to harvest"`
}

// resolveConfig merges the config file, flag overrides, and positional URLs.
// Flags override file values; positional URLs replace the configured list.
func resolveConfig(cli *CLI) (*yaml.Config, error) {
	cfg := yaml.Default()
	if cli.Config != "" {
		loaded, err := yaml.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cli.Output != "" {
		cfg.Output = cli.Output
	}
	if cli.Timeout > 0 {
		cfg.TimeoutSec = int(cli.Timeout.Seconds())
	}
	if cli.Rate > 0 {
		cfg.Rate = cli.Rate
	}
	if cli.UserAgent != "" {
		cfg.UserAgent = cli.UserAgent
	}
	if cli.Sitemap {
		cfg.Sitemap = true
	}
	if len(cli.Filter) > 0 {
		cfg.Filters = cli.Filter
	}
	if len(cli.URLs) > 0 {
		cfg.URLs = cli.URLs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
