package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Profiles   *artext.Profiles
	Format     artext.Format
	Converter  artext.Converter
	Parser     artext.Parser
	Detector   artext.SiteDetector
	Extractor  artext.Extractor
	Records    artext.RecordService
	Scrape     scrape.ScrapeFunc
	CaptureDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool   `short:"v" help:"Enable debug logging"`
	Format   string `short:"f" enum:"text,markdown,json" default:"text" env:"ARTEXT_FORMAT" help:"Output format (text, markdown, json)"`
	Dir      string `short:"d" default:"captures" env:"ARTEXT_DIR" help:"Directory for page captures"`
	DB       string `name:"db" env:"ARTEXT_DB" help:"Extraction history database (default: ~/.artext/artext.db)"`
	Profiles string `type:"existingfile" env:"ARTEXT_PROFILES" help:"YAML file with site profile overrides"`

	Static       bool          `env:"ARTEXT_STATIC" help:"Fetch pages over HTTP instead of rendering them in a browser"`
	Headful      bool          `help:"Show the browser window"`
	Timeout      time.Duration `short:"t" default:"10s" env:"ARTEXT_TIMEOUT" help:"HTTP fetch timeout for --static"`
	ReadyTimeout time.Duration `default:"15s" env:"ARTEXT_READY_TIMEOUT" help:"How long to wait for the article container to appear"`
	Settle       time.Duration `default:"3s" env:"ARTEXT_SETTLE" help:"Delay after the page is ready before reading it"`
	Trafilatura  bool          `help:"Also run the trafilatura strategy"`
	Readability  bool          `help:"Also run the readability strategy"`

	Extract  ExtractCmd  `cmd:"" help:"Extract the article at a URL"`
	File     FileCmd     `cmd:"" help:"Re-extract a saved page capture"`
	Captures CapturesCmd `cmd:"" help:"List saved page captures, newest first"`
	Batch    BatchCmd    `cmd:"" help:"Extract many URLs concurrently"`
	Classify ClassifyCmd `cmd:"" help:"Print the site a URL belongs to"`
	History  HistoryCmd  `cmd:"" help:"List stored extraction records"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Article URL"`
	Full bool   `help:"Print the full body instead of a preview"`
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	Path string `arg:"" type:"existingfile" help:"Saved page (.html)"`
	Site string `short:"s" help:"Site to extract as, overriding detection"`
}

// CapturesCmd is the "captures" subcommand.
type CapturesCmd struct {
	Dir string `arg:"" optional:"" help:"Capture directory (default: --dir)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Article URLs"`
	Input       string   `short:"i" type:"existingfile" help:"File with one URL per line"`
	Concurrency int      `short:"c" default:"3" env:"ARTEXT_CONCURRENCY" help:"Concurrent page limit"`
	Rate        float64  `default:"1" env:"ARTEXT_RATE" help:"Requests per second per domain (0 disables limiting)"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Show one record in full"`
	URL    string `help:"Only records for this URL"`
	Site   string `short:"s" help:"Only records for this site"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of records"`
	Delete bool   `help:"Delete the record given by ID"`
}
