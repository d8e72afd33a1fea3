package slog

import (
	"context"
	"log/slog"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure LoggingPreviewCache implements ogp.PreviewCache.
var _ ogp.PreviewCache = (*LoggingPreviewCache)(nil)

// LoggingPreviewCache wraps a PreviewCache with debug logging. Errors are
// logged and returned unchanged, so callers that ignore save failures
// still leave a trace.
type LoggingPreviewCache struct {
	next   ogp.PreviewCache
	logger *slog.Logger
}

// NewLoggingPreviewCache creates a new LoggingPreviewCache.
func NewLoggingPreviewCache(next ogp.PreviewCache, logger *slog.Logger) *LoggingPreviewCache {
	return &LoggingPreviewCache{next: next, logger: logger}
}

// FindPreview delegates to the wrapped cache and logs hits and misses.
func (c *LoggingPreviewCache) FindPreview(ctx context.Context, url string) (preview *ogp.Preview, err error) {
	defer func() {
		switch code := ogp.ErrorCode(err); code {
		case "":
			c.logger.Debug("cache hit", "url", url)
		case ogp.ENOTFOUND:
			c.logger.Debug("cache miss", "url", url, "reason", ogp.ErrorMessage(err))
		default:
			c.logger.Debug("cache lookup failed", "url", url, "code", code, "err", err)
		}
	}()
	return c.next.FindPreview(ctx, url)
}

// SavePreview delegates to the wrapped cache and logs failures.
func (c *LoggingPreviewCache) SavePreview(ctx context.Context, preview *ogp.Preview) (err error) {
	defer func() {
		if err != nil {
			c.logger.Debug("cache save failed", "url", previewURL(preview), "code", ogp.ErrorCode(err), "err", err)
		}
	}()
	return c.next.SavePreview(ctx, preview)
}

func previewURL(p *ogp.Preview) string {
	if p == nil {
		return ""
	}
	return p.URL
}
