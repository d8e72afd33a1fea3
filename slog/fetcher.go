// Package slog provides logging decorators for ogp services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure LoggingFetcher implements ogp.Fetcher.
var _ ogp.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   ogp.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next ogp.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *ogp.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if doc != nil {
			attrs = append(attrs, "final", doc.URL, "bytes", len(doc.HTML))
		}
		if err != nil {
			attrs = append(attrs, "code", ogp.ErrorCode(err), "err", err)
		}
		f.logger.Debug("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
