package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/artext"
	"github.com/fwojciec/artext/extract"
	"github.com/fwojciec/artext/fs"
	"github.com/fwojciec/artext/goquery"
	"github.com/fwojciec/artext/htmltomarkdown"
	arthttp "github.com/fwojciec/artext/http"
	"github.com/fwojciec/artext/readability"
	"github.com/fwojciec/artext/rod"
	"github.com/fwojciec/artext/scrape"
	artslog "github.com/fwojciec/artext/slog"
	"github.com/fwojciec/artext/sqlite"
	"github.com/fwojciec/artext/trafilatura"
	"github.com/fwojciec/artext/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overridden by --db.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Set before calling Run() to skip
	// the default wiring.
	Renderer artext.Renderer
	Records  artext.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Renderer != nil {
		err = m.Renderer.Close()
	}
	if m.DB != nil {
		if cerr := m.DB.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artext"),
		kong.Description("Extract article titles and bodies from blog and magazine pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artext --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]
	defer m.Close()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	profiles := artext.DefaultProfiles()
	if cli.Profiles != "" {
		profiles, err = yaml.LoadProfiles(cli.Profiles, profiles)
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
	}

	var strategies []artext.Strategy
	if cli.Trafilatura {
		strategies = append(strategies, trafilatura.NewStrategy())
	}
	if cli.Readability {
		strategies = append(strategies, readability.NewStrategy())
	}
	engine := extract.NewEngine(profiles,
		extract.WithLogger(logger),
		extract.WithStrategies(strategies...),
	)

	deps.Logger = logger
	deps.Profiles = profiles
	deps.Format = artext.Format(cli.Format)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Parser = goquery.NewParser()
	deps.Detector = goquery.NewDetector(profiles)
	deps.Extractor = artslog.NewLoggingExtractor(engine, logger)
	deps.CaptureDir = cli.Dir

	if cmd == "extract" || cmd == "batch" || cmd == "history" {
		if m.Records == nil {
			dbPath := m.DBPath
			if cli.DB != "" {
				dbPath = cli.DB
			}
			m.DB = sqlite.NewDB(dbPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set ARTEXT_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
			}
			m.Records = sqlite.NewRecordService(m.DB)
		}
		deps.Records = m.Records
	}

	if cmd == "extract" || cmd == "batch" {
		if m.Renderer == nil {
			renderer, err := newRenderer(cli, logger)
			if err != nil {
				return err
			}
			m.Renderer = renderer
		}

		scraper := &scrape.Scraper{
			Profiles:  profiles,
			Renderer:  m.Renderer,
			Detector:  deps.Detector,
			Parser:    deps.Parser,
			Extractor: deps.Extractor,
			Captures:  artslog.NewLoggingCaptureStore(fs.NewCaptureStore(cli.Dir), logger),
			Records:   deps.Records,
			Logger:    logger,
		}
		deps.Scrape = scraper.Scrape
	}

	return kongCtx.Run(deps)
}

// newRenderer returns the static HTTP renderer for --static and a headless
// browser otherwise.
func newRenderer(cli *CLI, logger *slog.Logger) (artext.Renderer, error) {
	if cli.Static {
		fetcher := arthttp.NewFetcher(arthttp.WithTimeout(cli.Timeout))
		return &scrape.StaticRenderer{
			Fetcher: artslog.NewLoggingFetcher(fetcher, logger),
			Parser:  goquery.NewParser(),
		}, nil
	}

	manager, err := rod.NewBrowserManager(rod.WithHeadless(!cli.Headful))
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w. Hint: Chrome or Chromium must be installed, or use --static", err)
	}
	renderer := rod.NewRenderer(manager,
		rod.WithReadyTimeout(cli.ReadyTimeout),
		rod.WithSettleDelay(cli.Settle),
		rod.WithLogger(logger),
	)
	return artslog.NewLoggingRenderer(renderer, logger), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "artext.db"
	}
	dir := filepath.Join(home, ".artext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "artext.db")
}
