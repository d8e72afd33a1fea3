package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/inutamago-dogegg/ogp"
	"github.com/inutamago-dogegg/ogp/fs"
	"github.com/inutamago-dogegg/ogp/goquery"
	ogphttp "github.com/inutamago-dogegg/ogp/http"
	"github.com/inutamago-dogegg/ogp/preview"
	"github.com/inutamago-dogegg/ogp/regexp"
	ogpslog "github.com/inutamago-dogegg/ogp/slog"
	"github.com/inutamago-dogegg/ogp/sqlite"
	"github.com/inutamago-dogegg/ogp/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
	// SQLite database backing the preview cache, if enabled.
	DB *sqlite.DB

	// Transport overrides the HTTP transport used for fetching. Used in tests.
	Transport http.RoundTripper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogp"),
		kong.Description("Fetch Open Graph link previews"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"timeout":    ogphttp.DefaultFetchTimeout.String(),
			"user_agent": ogphttp.DefaultUserAgent,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ogp --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	htmlParser, err := newParser(cli.Parser)
	if err != nil {
		return err
	}

	fetcherOpts := []ogphttp.Option{
		ogphttp.WithTimeout(cli.Timeout),
		ogphttp.WithUserAgent(cli.UserAgent),
	}
	if m.Transport != nil {
		fetcherOpts = append(fetcherOpts, ogphttp.WithTransport(m.Transport))
	}
	// Client-supplied URLs must not reach private networks.
	if kongCtx.Command() == "serve" && !cli.Serve.AllowPrivate {
		fetcherOpts = append(fetcherOpts, ogphttp.WithPrivateNetworkGuard())
	}
	fetcher := ogpslog.NewLoggingFetcher(ogphttp.NewFetcher(fetcherOpts...), deps.Logger)

	var previewer ogp.Previewer = preview.NewService(fetcher, htmlParser)

	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OGP_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		defer m.Close()

		deps.Cache = sqlite.NewPreviewCache(m.DB, sqlite.DefaultTTL)
		previewer = preview.NewCachedPreviewer(previewer, ogpslog.NewLoggingPreviewCache(deps.Cache, deps.Logger))
	}

	deps.Previewer = ogpslog.NewLoggingPreviewer(previewer, deps.Logger)
	deps.Content = yaml.NewLoader()
	deps.NewMapWriter = func(path string) ogp.MapWriter {
		return fs.NewMapWriter(path)
	}

	return kongCtx.Run(deps)
}

func newParser(name string) (ogp.Parser, error) {
	switch strings.ToLower(name) {
	case "", "regexp":
		return regexp.NewParser(), nil
	case "goquery":
		return goquery.NewParser(), nil
	}
	return nil, ogp.Errorf(ogp.EINVALID, "unknown parser %q", name)
}
