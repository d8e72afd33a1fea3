package ogp

// MetaAttr names the attribute a meta tag uses to identify its key.
type MetaAttr string

// Meta tag key attributes.
const (
	AttrProperty MetaAttr = "property"
	AttrName     MetaAttr = "name"
)

// MetaSource answers metadata lookups against a parsed HTML document.
type MetaSource interface {
	// Meta returns the raw content of the first meta tag whose attr equals
	// key, compared case-insensitively. Tags without a content attribute
	// never match. ok is false when no tag matches.
	Meta(attr MetaAttr, key string) (content string, ok bool)

	// Title returns the trimmed text of the document's <title> element.
	Title() (title string, ok bool)
}

// Parser turns raw HTML into a MetaSource.
// Implementations may use heuristic scanning or a full DOM parser; the
// fallback chains and entity decoding in Extract apply to both.
type Parser interface {
	Parse(html string) (MetaSource, error)
}
