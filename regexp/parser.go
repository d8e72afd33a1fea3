// Package regexp provides a heuristic implementation of ogp.Parser that
// scans meta tags with regular expressions instead of building a DOM.
// It tolerates irregular markup: unquoted or single-quoted attribute
// values, any attribute order, and mixed-case names.
package regexp

import (
	"regexp"
	"strings"

	"github.com/inutamago-dogegg/ogp"
)

// Ensure Parser implements ogp.Parser at compile time.
var _ ogp.Parser = (*Parser)(nil)

var (
	// metaTagPattern matches a whole <meta ...> tag. Quoted values may
	// contain '>' and a '<' that does not open a tag ("1 < 2"). A quote
	// that runs into the next tag never closes, so that tag is skipped.
	metaTagPattern = regexp.MustCompile(`(?i)<meta\s(?:[^<>"']|"(?:[^"<]|<[^a-z/!"])*"|'(?:[^'<]|<[^a-z/!'])*')*>`)

	// attrPattern matches name, name=value, name='value' and name="value".
	attrPattern = regexp.MustCompile(`([:\w-]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+)))?`)

	titlePattern = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
)

// Parser scans HTML for meta tags and the document title.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans html once and returns a lookup over its meta tags.
// It never fails; a document without meta tags yields empty lookups.
func (p *Parser) Parse(html string) (ogp.MetaSource, error) {
	doc := &document{}
	for _, tag := range metaTagPattern.FindAllString(html, -1) {
		doc.tags = append(doc.tags, parseAttrs(tag))
	}
	if m := titlePattern.FindStringSubmatch(html); m != nil {
		doc.title = strings.TrimSpace(m[1])
	}
	return doc, nil
}

// parseAttrs returns the attributes of a tag keyed by lowercased name.
// The first occurrence of a repeated attribute wins. An unquoted value
// that runs into the closing "/>" loses its trailing slash.
func parseAttrs(tag string) map[string]string {
	attrs := make(map[string]string)
	selfClosing := strings.HasSuffix(tag, "/>")
	for _, idx := range attrPattern.FindAllStringSubmatchIndex(tag, -1) {
		key := strings.ToLower(group(tag, idx, 1))
		if key == "" {
			continue
		}
		if _, ok := attrs[key]; ok {
			continue
		}
		var value string
		switch {
		case idx[4] >= 0:
			value = group(tag, idx, 2)
		case idx[6] >= 0:
			value = group(tag, idx, 3)
		default:
			value = group(tag, idx, 4)
			if selfClosing && idx[1] == len(tag)-1 {
				value = strings.TrimSuffix(value, "/")
			}
		}
		attrs[key] = strings.TrimSpace(value)
	}
	return attrs
}

// group returns submatch n of a FindAllStringSubmatchIndex result, or ""
// when the group did not participate.
func group(s string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n]:idx[2*n+1]]
}

// document is the ogp.MetaSource produced by Parser.
type document struct {
	tags  []map[string]string
	title string
}

func (d *document) Meta(attr ogp.MetaAttr, key string) (string, bool) {
	key = strings.TrimSpace(key)
	for _, attrs := range d.tags {
		v, ok := attrs[string(attr)]
		if !ok || !strings.EqualFold(v, key) {
			continue
		}
		content, ok := attrs["content"]
		if !ok {
			continue
		}
		return content, true
	}
	return "", false
}

func (d *document) Title() (string, bool) {
	return d.title, d.title != ""
}
