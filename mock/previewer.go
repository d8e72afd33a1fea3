package mock

import (
	"context"

	"github.com/inutamago-dogegg/ogp"
)

var _ ogp.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of ogp.Previewer.
type Previewer struct {
	FetchPreviewFn func(ctx context.Context, url string) (*ogp.Preview, error)
}

func (p *Previewer) FetchPreview(ctx context.Context, url string) (*ogp.Preview, error) {
	return p.FetchPreviewFn(ctx, url)
}

var _ ogp.PreviewCache = (*PreviewCache)(nil)

// PreviewCache is a mock implementation of ogp.PreviewCache.
type PreviewCache struct {
	FindPreviewFn func(ctx context.Context, url string) (*ogp.Preview, error)
	SavePreviewFn func(ctx context.Context, preview *ogp.Preview) error
}

func (c *PreviewCache) FindPreview(ctx context.Context, url string) (*ogp.Preview, error) {
	return c.FindPreviewFn(ctx, url)
}

func (c *PreviewCache) SavePreview(ctx context.Context, preview *ogp.Preview) error {
	return c.SavePreviewFn(ctx, preview)
}
