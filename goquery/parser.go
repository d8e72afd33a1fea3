// Package goquery provides a DOM-based implementation of ogp.Parser.
// It is a drop-in alternative to the regexp scanner for callers that
// prefer a full HTML5 parse over heuristic matching.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/inutamago-dogegg/ogp"
)

// Ensure Parser implements ogp.Parser at compile time.
var _ ogp.Parser = (*Parser)(nil)

// Parser parses HTML into a goquery document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a DOM from html. The HTML5 parser lowercases attribute
// names and decodes character references in attribute values.
func (p *Parser) Parse(html string) (ogp.MetaSource, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ogp.Errorf(ogp.EINVALID, "failed to parse HTML: %v", err)
	}
	return &document{doc: doc}, nil
}

// document is the ogp.MetaSource produced by Parser.
type document struct {
	doc *goquery.Document
}

func (d *document) Meta(attr ogp.MetaAttr, key string) (string, bool) {
	key = strings.TrimSpace(key)

	var content string
	var found bool
	d.doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		v, exists := sel.Attr(string(attr))
		if !exists || !strings.EqualFold(strings.TrimSpace(v), key) {
			return true
		}
		c, exists := sel.Attr("content")
		if !exists {
			return true
		}
		content, found = strings.TrimSpace(c), true
		return false
	})
	return content, found
}

func (d *document) Title() (string, bool) {
	title := strings.TrimSpace(d.doc.Find("title").First().Text())
	return title, title != ""
}
