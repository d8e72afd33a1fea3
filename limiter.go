package ogp

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ProgressEvent reports progress while previews are collected.
type ProgressEvent struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as each URL finishes.
type ProgressFunc func(ProgressEvent)

// MapWriter persists a preview map for the presentation layer.
type MapWriter interface {
	WriteMap(m PreviewMap) error
}
