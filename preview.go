package ogp

import (
	"context"
	"encoding/json"
	"strings"
)

// Preview is the normalized link preview of a remote page.
// Optional fields are empty when nothing could be extracted for them.
type Preview struct {
	// URL is the originally requested URL, never the redirect target.
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	// Image is always an absolute http(s) URL when set.
	Image    string `json:"image,omitempty"`
	SiteName string `json:"siteName,omitempty"`
}

// Previewer fetches a page and builds its preview.
type Previewer interface {
	// FetchPreview returns the preview for url. Errors carry EINVALID for
	// URLs that are not absolute http(s) URLs, ETRANSPORT for network
	// failures and EHTTP for non-2xx responses.
	FetchPreview(ctx context.Context, url string) (*Preview, error)
}

// Lookup returns the preview for url, or nil when no preview is available.
// It never returns an error and never panics; callers render a plain link
// when the result is nil.
func Lookup(ctx context.Context, p Previewer, url string) (preview *Preview) {
	defer func() {
		if recover() != nil {
			preview = nil
		}
	}()
	preview, err := p.FetchPreview(ctx, url)
	if err != nil {
		return nil
	}
	return preview
}

// PreviewMap maps a URL to its preview. URLs without a preview are absent.
type PreviewMap map[string]*Preview

// MarshalJSON encodes the map as a JSON object keyed by URL.
// Keys are emitted in sorted order by encoding/json.
func (m PreviewMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]*Preview(m))
}

// PreviewCache stores previews between runs.
type PreviewCache interface {
	// FindPreview returns the cached preview for url.
	// Returns ENOTFOUND if nothing is cached or the entry is stale.
	FindPreview(ctx context.Context, url string) (*Preview, error)

	// SavePreview stores or replaces the cached preview for preview.URL.
	SavePreview(ctx context.Context, preview *Preview) error
}

// IsHTTPURL reports whether s starts with an http:// or https:// scheme,
// ignoring case and surrounding whitespace. It is a prefix test, not a full
// parse, so slightly malformed URLs still pass.
func IsHTTPURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
