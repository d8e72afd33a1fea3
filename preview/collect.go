package preview

import (
	"context"
	"fmt"

	"github.com/inutamago-dogegg/ogp"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of previews fetched in parallel when
// Collector.Concurrency is not set.
const DefaultConcurrency = 4

// Collector builds a preview map for a list of URLs.
type Collector struct {
	Previewer   ogp.Previewer
	RateLimiter ogp.DomainLimiter // optional
	Concurrency int
}

// collectResult holds the outcome of previewing a single URL.
type collectResult struct {
	url     string
	preview *ogp.Preview
	err     error
}

// Collect previews every distinct URL and returns the ones that produced a
// preview. Failures for individual URLs are reported through progress and
// leave the URL out of the map; only context cancellation fails the call.
func (c *Collector) Collect(ctx context.Context, urls []string, progress ogp.ProgressFunc) (ogp.PreviewMap, error) {
	urls = distinct(urls)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan collectResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range urls {
			g.Go(func() error {
				resultCh <- c.previewURL(gctx, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	previews := make(ogp.PreviewMap, len(urls))
	var completed int
	for result := range resultCh {
		completed++
		if result.err == nil && result.preview != nil {
			previews[result.url] = result.preview
		}
		if progress != nil {
			progress(ogp.ProgressEvent{
				URL:       result.url,
				Completed: completed,
				Total:     len(urls),
				Error:     result.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return previews, err
	}
	return previews, nil
}

// previewURL previews one URL. Panics are returned as EINTERNAL errors.
func (c *Collector) previewURL(ctx context.Context, url string) (result collectResult) {
	result.url = url
	defer func() {
		if r := recover(); r != nil {
			result.preview = nil
			result.err = ogp.Errorf(ogp.EINTERNAL, "preview %s: %v", url, r)
		}
	}()

	if c.RateLimiter != nil && ogp.IsHTTPURL(url) {
		if err := c.RateLimiter.Wait(ctx, ogp.Hostname(url)); err != nil {
			result.err = fmt.Errorf("rate limit: %w", err)
			return result
		}
	}

	result.preview, result.err = c.Previewer.FetchPreview(ctx, url)
	return result
}

// distinct removes duplicate URLs, keeping first-seen order.
func distinct(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
