package ogp

import "context"

// Document is a fetched HTML page.
type Document struct {
	// URL is the final URL after all redirects were followed.
	URL string

	// HTML is the response body decoded as UTF-8 text.
	HTML string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET for url, following redirects.
	// Returns ETRANSPORT when the request fails and EHTTP when the
	// response status is outside the 2xx range.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Document, error)
}
