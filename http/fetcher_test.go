package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inutamago-dogegg/ogp"
	ogphttp "github.com/inutamago-dogegg/ogp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/charset"
)

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body and final URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		doc, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL+"/page")
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", doc.HTML)
		assert.Equal(t, server.URL+"/page", doc.URL)
	})

	t.Run("sends user agent and accept headers", func(t *testing.T) {
		t.Parallel()

		headers := make(chan http.Header, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		h := <-headers
		assert.Equal(t, ogphttp.DefaultUserAgent, h.Get("User-Agent"))
		assert.Equal(t, "text/html,application/xhtml+xml", h.Get("Accept"))
	})

	t.Run("uses custom user agent", func(t *testing.T) {
		t.Parallel()

		userAgents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgents <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		_, err := ogphttp.NewFetcher(ogphttp.WithUserAgent("portfolio-build/2.0")).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "portfolio-build/2.0", <-userAgents)
	})

	t.Run("follows redirects and reports the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/final", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<title>Final</title>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		doc, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL+"/x")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/final", doc.URL)
		assert.Equal(t, "<title>Final</title>", doc.HTML)
	})

	t.Run("issues exactly one request without retries", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("returns EHTTP for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, ogp.EHTTP, ogp.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("<title>203</title>"))
		}))
		defer server.Close()

		doc, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<title>203</title>", doc.HTML)
	})

	t.Run("returns ETRANSPORT when the transport fails", func(t *testing.T) {
		t.Parallel()

		transport := roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := ogphttp.NewFetcher(ogphttp.WithTransport(transport)).Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, ogp.ETRANSPORT, ogp.ErrorCode(err))
	})

	t.Run("returns ETRANSPORT for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := ogphttp.NewFetcher(ogphttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, ogp.ETRANSPORT, ogp.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := ogphttp.NewFetcher(ogphttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, ogp.ETRANSPORT, ogp.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ogphttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("truncates bodies larger than the limit", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 100)))
		}))
		defer server.Close()

		doc, err := ogphttp.NewFetcher(ogphttp.WithMaxBodySize(10)).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, doc.HTML, 10)
	})

	t.Run("decodes declared non-UTF-8 charsets", func(t *testing.T) {
		t.Parallel()

		enc, _ := charset.Lookup("shift_jis")
		require.NotNil(t, enc)
		encoded, err := enc.NewEncoder().String("<title>どぐえぐ</title>")
		require.NoError(t, err)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=Shift_JIS")
			_, _ = w.Write([]byte(encoded))
		}))
		defer server.Close()

		doc, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<title>どぐえぐ</title>", doc.HTML)
	})

	t.Run("assumes UTF-8 without a declared charset", func(t *testing.T) {
		t.Parallel()

		body := "<html>" + strings.Repeat(" ", 2048) + "<title>日本語</title></html>"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		doc, err := ogphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, body, doc.HTML)
	})
}
