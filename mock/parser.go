package mock

import "github.com/inutamago-dogegg/ogp"

var _ ogp.Parser = (*Parser)(nil)

// Parser is a mock implementation of ogp.Parser.
type Parser struct {
	ParseFn func(html string) (ogp.MetaSource, error)
}

func (p *Parser) Parse(html string) (ogp.MetaSource, error) {
	return p.ParseFn(html)
}

var _ ogp.MetaSource = (*MetaSource)(nil)

// MetaSource is a mock implementation of ogp.MetaSource.
type MetaSource struct {
	MetaFn  func(attr ogp.MetaAttr, key string) (string, bool)
	TitleFn func() (string, bool)
}

func (s *MetaSource) Meta(attr ogp.MetaAttr, key string) (string, bool) {
	return s.MetaFn(attr, key)
}

func (s *MetaSource) Title() (string, bool) {
	return s.TitleFn()
}
