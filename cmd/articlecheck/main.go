package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/articlecheck"
	"github.com/fwojciec/articlecheck/analysis"
	"github.com/fwojciec/articlecheck/anthropic"
	"github.com/fwojciec/articlecheck/gemini"
	"github.com/fwojciec/articlecheck/goquery"
	"github.com/fwojciec/articlecheck/htmltomarkdown"
	achttp "github.com/fwojciec/articlecheck/http"
	"github.com/fwojciec/articlecheck/openai"
	"github.com/fwojciec/articlecheck/prometheus"
	"github.com/fwojciec/articlecheck/readability"
	"github.com/fwojciec/articlecheck/rod"
	"github.com/fwojciec/articlecheck/scrape"
	acslog "github.com/fwojciec/articlecheck/slog"
	"github.com/fwojciec/articlecheck/trafilatura"
	gogin "github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadEnvFiles(".env.local", ".env")
	gogin.SetMode(gogin.ReleaseMode)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadEnvFiles loads each file that exists. Variables already present in
// the environment win, and earlier files win over later ones.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

// Main represents the program.
type Main struct {
	// Service replaces the wired analysis pipeline. Set before calling Run().
	Service articlecheck.AnalysisService

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i].Close())
	}
	m.closers = nil
	return errors.Join(errs...)
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
		kong.Name("articlecheck"),
		kong.Description("Analyze web articles for SEO quality and factual accuracy"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'articlecheck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.CLI = cli
	deps.Logger = NewLogger(stderr, cli.LogFormat, cli.LogLevel)
	deps.Metrics = prometheus.NewMetrics()

	deps.Service = m.Service
	if deps.Service == nil {
		svc, err := m.wireService(ctx, cli, deps.Metrics, deps.Logger)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Service = svc
	}

	return kongCtx.Run(deps)
}

// wireService builds the analysis pipeline from the CLI settings:
// fetch, extract and convert the article, then run both analyses against
// the configured model, with logging and metrics around each stage.
func (m *Main) wireService(ctx context.Context, cli *CLI, metrics *prometheus.Metrics, logger *slog.Logger) (articlecheck.AnalysisService, error) {
	completer, err := newCompleter(ctx, cli)
	if err != nil {
		return nil, err
	}

	var opts []analysis.Option
	if cli.ReferenceDate != "" {
		date, err := time.Parse(time.DateOnly, cli.ReferenceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_DATE %q: expected YYYY-MM-DD", cli.ReferenceDate)
		}
		opts = append(opts, analysis.WithReferenceDate(date))
	}

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		return nil, err
	}

	var extractor articlecheck.ArticleExtractor = &scrape.Scraper{
		Fetcher:   acslog.NewLoggingFetcher(fetcher, logger),
		Extractor: newExtractor(cli.Extractor),
		Converter: htmltomarkdown.NewConverter(),
		Metadata:  goquery.NewMetadataReader(),
	}
	extractor = acslog.NewLoggingArticleExtractor(extractor, logger)

	logged := acslog.NewLoggingCompleter(completer, logger)
	links := acslog.NewLoggingLinkChecker(
		achttp.NewLinkChecker(achttp.WithLinkTimeout(cli.LinkTimeout)),
		logger,
	)

	var service articlecheck.AnalysisService = &analysis.Service{
		Extractor: extractor,
		SEO:       analysis.NewSEOAnalyzer(metrics.InstrumentCompleter("seo", logged), links, opts...),
		Factual:   analysis.NewFactualAnalyzer(metrics.InstrumentCompleter("factual", logged), links, opts...),
	}
	service = metrics.InstrumentService(service)
	return acslog.NewLoggingService(service, logger), nil
}

func (m *Main) newFetcher(cli *CLI) (articlecheck.Fetcher, error) {
	if cli.Fetcher == "rod" {
		fetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.FetchTimeout),
			rod.WithUserAgent(achttp.UserAgent),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		m.closers = append(m.closers, fetcher)
		return fetcher, nil
	}

	fetcher := achttp.NewFetcher(achttp.WithTimeout(cli.FetchTimeout))
	m.closers = append(m.closers, fetcher)
	return fetcher, nil
}

func newExtractor(name string) articlecheck.Extractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

// newCompleter returns the model client for the selected provider.
// A missing API key is reported before anything is served.
func newCompleter(ctx context.Context, cli *CLI) (articlecheck.Completer, error) {
	switch cli.Provider {
	case "gemini":
		c, err := gemini.NewCompleter(ctx, gemini.Config{
			APIKey: cli.GeminiKey,
			Model:  cli.Model,
		})
		return c, providerError(err, "GEMINI_API_KEY")
	case "anthropic":
		c, err := anthropic.NewCompleter(anthropic.Config{
			APIKey: cli.AnthropicKey,
			Model:  cli.Model,
		})
		return c, providerError(err, "ANTHROPIC_API_KEY")
	default:
		c, err := openai.NewCompleter(openai.Config{
			APIKey:     cli.OpenRouterKey,
			BaseURL:    cli.OpenRouterURL,
			Model:      cli.Model,
			HTTPClient: &http.Client{Timeout: 2 * time.Minute},
		})
		return c, providerError(err, "OPENROUTER_API_KEY")
	}
}

func providerError(err error, envVar string) error {
	if err == nil {
		return nil
	}
	if articlecheck.ErrorCode(err) == articlecheck.EINVALID {
		return fmt.Errorf("%s: set %s in the environment or .env", articlecheck.ErrorMessage(err), envVar)
	}
	return err
}

// NewLogger returns a slog.Logger writing to w in the given format
// ("text" or "json") at the given level.
func NewLogger(w io.Writer, format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
