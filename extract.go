package ogp

import (
	"net/url"
	"strings"
)

// metaKey identifies one link of a fallback chain.
type metaKey struct {
	attr MetaAttr
	key  string
}

// Fallback chains, evaluated in order. The first present value wins.
var (
	titleKeys = []metaKey{
		{AttrProperty, "og:title"},
		{AttrName, "twitter:title"},
	}
	descriptionKeys = []metaKey{
		{AttrProperty, "og:description"},
		{AttrName, "twitter:description"},
		{AttrName, "description"},
	}
	imageKeys = []metaKey{
		{AttrProperty, "og:image"},
		{AttrProperty, "og:image:secure_url"},
		{AttrName, "twitter:image"},
		{AttrName, "twitter:image:src"},
	}
	siteNameKeys = []metaKey{
		{AttrProperty, "og:site_name"},
	}
)

// Extract builds a Preview from parsed metadata.
// targetURL is the URL the caller asked for and is echoed in Preview.URL.
// finalURL is the post-redirect URL used to resolve relative images and
// as the site name fallback.
func Extract(src MetaSource, targetURL, finalURL string) *Preview {
	preview := &Preview{URL: strings.TrimSpace(targetURL)}

	if v, ok := firstMeta(src, titleKeys); ok {
		preview.Title = DecodeEntities(v)
	} else if v, ok := src.Title(); ok {
		preview.Title = DecodeEntities(v)
	}

	if v, ok := firstMeta(src, descriptionKeys); ok {
		preview.Description = DecodeEntities(v)
	}

	if v, ok := firstMeta(src, imageKeys); ok {
		preview.Image = ResolveURL(DecodeEntities(v), finalURL)
	}

	if v, ok := firstMeta(src, siteNameKeys); ok {
		preview.SiteName = DecodeEntities(v)
	} else {
		preview.SiteName = Hostname(finalURL)
	}

	return preview
}

// firstMeta walks a fallback chain. Values that are blank after trimming
// count as absent so the chain keeps going.
func firstMeta(src MetaSource, keys []metaKey) (string, bool) {
	for _, k := range keys {
		v, ok := src.Meta(k.attr, k.key)
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// entityReplacer decodes the fixed entity set in a single pass, so
// "&amp;lt;" becomes "&lt;" and not "<".
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#x27;", "'",
	"&#x2F;", "/",
	"&#x60;", "`",
	"&#x3D;", "=",
)

// DecodeEntities decodes a minimal fixed set of HTML entities.
// Any other entity, named or numeric, is left as-is.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityReplacer.Replace(s)
}

// ResolveURL resolves ref against base and returns an absolute http(s) URL.
// Returns an empty string when either value cannot be parsed or the result
// is not an absolute http(s) URL (e.g. data: or javascript: references).
func ResolveURL(ref, base string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := baseURL.ResolveReference(refURL)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// Hostname returns the lowercased host of rawURL without port, or "" if it
// cannot be parsed.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
