package preview

import (
	"context"
	"strings"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure CachedPreviewer implements ogp.Previewer at compile time.
var _ ogp.Previewer = (*CachedPreviewer)(nil)

// CachedPreviewer serves previews from a cache and falls back to the wrapped
// previewer on a miss. Only successful previews are stored, so a failed
// fetch is retried on the next call. Save failures do not fail the preview;
// wrap the cache with slog.LoggingPreviewCache to record them.
type CachedPreviewer struct {
	next  ogp.Previewer
	cache ogp.PreviewCache
}

// NewCachedPreviewer creates a new CachedPreviewer.
func NewCachedPreviewer(next ogp.Previewer, cache ogp.PreviewCache) *CachedPreviewer {
	return &CachedPreviewer{next: next, cache: cache}
}

// FetchPreview returns the cached preview for url or fetches a fresh one.
func (p *CachedPreviewer) FetchPreview(ctx context.Context, url string) (*ogp.Preview, error) {
	url = strings.TrimSpace(url)
	if !ogp.IsHTTPURL(url) {
		return nil, ogp.Errorf(ogp.EINVALID, "unsupported URL %q", url)
	}

	if cached, err := p.cache.FindPreview(ctx, url); err == nil {
		return cached, nil
	}

	preview, err := p.next.FetchPreview(ctx, url)
	if err != nil {
		return nil, err
	}

	_ = p.cache.SavePreview(ctx, preview)

	return preview, nil
}
