package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inutamago-dogegg/ogp"
)

// DefaultTTL is how long a cached preview stays fresh.
// It matches the max-age the preview route advertises.
const DefaultTTL = 24 * time.Hour

// Compile-time interface verification.
var _ ogp.PreviewCache = (*PreviewCache)(nil)

// PreviewCache implements ogp.PreviewCache using SQLite.
type PreviewCache struct {
	db  *DB
	ttl time.Duration

	// Now returns the current time. Tests may override it.
	Now func() time.Time
}

// NewPreviewCache creates a new PreviewCache. A ttl <= 0 uses DefaultTTL.
func NewPreviewCache(db *DB, ttl time.Duration) *PreviewCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PreviewCache{db: db, ttl: ttl, Now: time.Now}
}

// FindPreview returns the cached preview for url.
// Returns ENOTFOUND if the URL was never cached or its entry is older than the TTL.
func (c *PreviewCache) FindPreview(ctx context.Context, url string) (*ogp.Preview, error) {
	var p ogp.Preview
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, title, description, image, site_name, fetched_at
		FROM previews
		WHERE url = ?
	`, strings.TrimSpace(url)).Scan(&p.URL, &p.Title, &p.Description, &p.Image, &p.SiteName, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ogp.Errorf(ogp.ENOTFOUND, "preview not found")
	}
	if err != nil {
		return nil, err
	}

	fetched, err := parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	if c.Now().Sub(fetched) > c.ttl {
		return nil, ogp.Errorf(ogp.ENOTFOUND, "preview expired")
	}

	return &p, nil
}

// SavePreview stores preview, replacing any previous entry for its URL.
func (c *PreviewCache) SavePreview(ctx context.Context, preview *ogp.Preview) error {
	if preview == nil || strings.TrimSpace(preview.URL) == "" {
		return ogp.Errorf(ogp.EINVALID, "preview URL required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO previews (id, url, title, description, image, site_name, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			image = excluded.image,
			site_name = excluded.site_name,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), strings.TrimSpace(preview.URL), preview.Title, preview.Description,
		preview.Image, preview.SiteName, c.Now().UTC().Format(time.RFC3339))

	return err
}

// DeleteExpired removes entries older than the TTL and returns how many were removed.
func (c *PreviewCache) DeleteExpired(ctx context.Context) (int64, error) {
	cutoff := c.Now().Add(-c.ttl).UTC().Format(time.RFC3339)
	res, err := c.db.ExecContext(ctx, `DELETE FROM previews WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
