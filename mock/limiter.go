package mock

import (
	"context"

	"github.com/inutamago-dogegg/ogp"
)

var _ ogp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ogp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ ogp.MapWriter = (*MapWriter)(nil)

// MapWriter is a mock implementation of ogp.MapWriter.
type MapWriter struct {
	WriteMapFn func(m ogp.PreviewMap) error
}

func (w *MapWriter) WriteMap(m ogp.PreviewMap) error {
	return w.WriteMapFn(m)
}

var _ ogp.ContentLoader = (*ContentLoader)(nil)

// ContentLoader is a mock implementation of ogp.ContentLoader.
type ContentLoader struct {
	LoadContentFn func(path string) (*ogp.Content, error)
}

func (l *ContentLoader) LoadContent(path string) (*ogp.Content, error) {
	return l.LoadContentFn(path)
}
