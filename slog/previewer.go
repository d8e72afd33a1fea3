package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure LoggingPreviewer implements ogp.Previewer.
var _ ogp.Previewer = (*LoggingPreviewer)(nil)

// LoggingPreviewer wraps a Previewer and logs each outcome.
// Failures are logged at warn level with their error code.
type LoggingPreviewer struct {
	next   ogp.Previewer
	logger *slog.Logger
}

// NewLoggingPreviewer creates a new LoggingPreviewer.
func NewLoggingPreviewer(next ogp.Previewer, logger *slog.Logger) *LoggingPreviewer {
	return &LoggingPreviewer{next: next, logger: logger}
}

// FetchPreview delegates to the wrapped previewer and logs the result.
func (p *LoggingPreviewer) FetchPreview(ctx context.Context, url string) (preview *ogp.Preview, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Warn("preview failed",
				"url", url,
				"code", ogp.ErrorCode(err),
				"err", ogp.ErrorMessage(err),
				"duration", time.Since(begin),
			)
			return
		}
		if preview == nil {
			p.logger.Info("preview", "url", url, "duration", time.Since(begin))
			return
		}
		p.logger.Info("preview",
			"url", url,
			"title", preview.Title,
			"image", preview.Image != "",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.FetchPreview(ctx, url)
}
