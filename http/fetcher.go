// Package http provides an HTTP-based implementation of ogp.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"time"

	"github.com/inutamago-dogegg/ogp"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultFetchTimeout bounds each request, including redirects and body read.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultUserAgent identifies the fetcher to remote hosts.
	DefaultUserAgent = "ogp-preview/1.0"

	// DefaultMaxBodySize caps how much of a response body is read.
	// Meta tags live in <head>, so truncating huge pages loses nothing.
	DefaultMaxBodySize int64 = 8 << 20

	acceptHeader = "text/html,application/xhtml+xml"
)

// Ensure Fetcher implements ogp.Fetcher at compile time.
var _ ogp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with a single GET request per call.
// Redirects are followed with the standard net/http policy. It is safe
// for concurrent use.
type Fetcher struct {
	client      *http.Client
	transport   http.RoundTripper
	timeout     time.Duration
	userAgent   string
	maxBodySize int64

	blockPrivate bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithTransport sets the RoundTripper used by the underlying client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithPrivateNetworkGuard refuses connections to loopback, private and
// link-local addresses, including after redirects. It has no effect when
// WithTransport supplies a custom RoundTripper.
func WithPrivateNetworkGuard() Option {
	return func(f *Fetcher) {
		f.blockPrivate = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.timeout <= 0 {
		f.timeout = DefaultFetchTimeout
	}

	if f.transport == nil && f.blockPrivate {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = nil
		transport.DialContext = guardedDialContext(&net.Dialer{Timeout: f.timeout})
		f.transport = transport
	}

	f.client = &http.Client{
		Transport: f.transport,
		Timeout:   f.timeout,
	}

	return f
}

// Fetch retrieves the HTML document at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ogp.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ogp.Errorf(ogp.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if errors.Is(err, ErrPrivateAddress) {
		return nil, ogp.Errorf(ogp.EINVALID, "refusing to fetch %s: %v", url, err)
	} else if err != nil {
		return nil, ogp.Errorf(ogp.ETRANSPORT, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ogp.Errorf(ogp.EHTTP, "HTTP %d for %s", resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if f.maxBodySize > 0 {
		body = io.LimitReader(resp.Body, f.maxBodySize)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, ogp.Errorf(ogp.ETRANSPORT, "read body of %s: %v", url, err)
	}

	return &ogp.Document{
		URL:  resp.Request.URL.String(),
		HTML: decodeBody(raw, resp.Header.Get("Content-Type")),
	}, nil
}

// decodeBody converts raw to UTF-8 when the Content-Type header declares
// another charset. Without a declared charset the body is taken as UTF-8.
func decodeBody(raw []byte, contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(raw)
	}
	enc, name := charset.Lookup(params["charset"])
	if enc == nil || name == "utf-8" {
		return string(raw)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
