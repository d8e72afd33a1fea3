package mock

import (
	"context"

	"github.com/inutamago-dogegg/ogp"
)

var _ ogp.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ogp.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*ogp.Document, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ogp.Document, error) {
	return f.FetchFn(ctx, url)
}
