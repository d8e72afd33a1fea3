package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/inutamago-dogegg/ogp"
	"github.com/inutamago-dogegg/ogp/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Previewer ogp.Previewer
	Content   ogp.ContentLoader
	Cache     *sqlite.PreviewCache // nil when caching is disabled

	// NewMapWriter returns the writer for a build output path.
	NewMapWriter func(path string) ogp.MapWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `default:"${timeout}" help:"Fetch timeout per page"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header sent to remote hosts"`
	Parser    string        `enum:"regexp,goquery" default:"regexp" help:"HTML metadata parser (regexp, goquery)"`
	Cache     string        `env:"OGP_CACHE" help:"SQLite preview cache path (disabled when empty)"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`

	Get   GetCmd   `cmd:"" help:"Print the preview of a URL as JSON"`
	Build BuildCmd `cmd:"" help:"Build the preview map for a content file"`
	Serve ServeCmd `cmd:"" help:"Serve previews over HTTP"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Content     string   `arg:"" type:"path" help:"Content YAML file"`
	Output      string   `short:"o" type:"path" default:"ogp.json" help:"Output JSON file"`
	Section     []string `short:"s" help:"Only include links from these sections (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per host (0 disables)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr         string   `default:":8080" env:"OGP_ADDR" help:"Listen address"`
	AllowOrigin  []string `name:"allow-origin" help:"CORS allowed origin (repeatable)"`
	AllowPrivate bool     `name:"allow-private" help:"Allow previews of loopback and private network addresses"`
}
