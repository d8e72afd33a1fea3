// Package preview turns fetched pages into link previews and collects
// previews for many URLs concurrently.
package preview

import (
	"context"
	"strings"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure Service implements ogp.Previewer at compile time.
var _ ogp.Previewer = (*Service)(nil)

// Service builds a preview from a single fetch of the target page.
type Service struct {
	Fetcher ogp.Fetcher
	Parser  ogp.Parser
}

// NewService creates a new Service.
func NewService(fetcher ogp.Fetcher, parser ogp.Parser) *Service {
	return &Service{Fetcher: fetcher, Parser: parser}
}

// FetchPreview fetches target and extracts its preview.
// Non-http(s) input is rejected with EINVALID before any request is made.
func (s *Service) FetchPreview(ctx context.Context, target string) (*ogp.Preview, error) {
	target = strings.TrimSpace(target)
	if !ogp.IsHTTPURL(target) {
		return nil, ogp.Errorf(ogp.EINVALID, "unsupported URL %q", target)
	}

	doc, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		if ogp.ErrorCode(err) == ogp.EINTERNAL {
			return nil, ogp.Errorf(ogp.ETRANSPORT, "fetch %s: %v", target, err)
		}
		return nil, err
	}

	return s.extract(doc, target), nil
}

// extract parses doc and applies the fallback chains. The body has already
// been read, so a parser failure or panic degrades to a preview carrying
// only the URL instead of failing the call.
func (s *Service) extract(doc *ogp.Document, target string) (preview *ogp.Preview) {
	defer func() {
		if recover() != nil {
			preview = &ogp.Preview{URL: target}
		}
	}()

	src, err := s.Parser.Parse(doc.HTML)
	if err != nil {
		return &ogp.Preview{URL: target}
	}

	finalURL := doc.URL
	if finalURL == "" {
		finalURL = target
	}
	return ogp.Extract(src, target, finalURL)
}
