package preview

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/inutamago-dogegg/ogp"
	"golang.org/x/time/rate"
)

var _ ogp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out previews of the same host with one token bucket
// per host. Content files often link many pages of one site.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter returns a limiter allowing rps previews per second per
// host, with a burst of 1. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
// domain may be a bare host, a host:port pair or an absolute URL; hosts
// are compared case-insensitively and without port.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := hostKey(domain)

	d.mu.Lock()
	bucket, ok := d.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(d.limit, 1)
		d.buckets[key] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}

// hostKey reduces domain to a lowercased host without port or trailing dot.
func hostKey(domain string) string {
	domain = strings.TrimSpace(domain)
	if strings.Contains(domain, "://") {
		domain = ogp.Hostname(domain)
	} else if host, _, err := net.SplitHostPort(domain); err == nil {
		domain = host
	}
	return strings.TrimSuffix(strings.ToLower(domain), ".")
}
