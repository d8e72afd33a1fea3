package ogp

import "strings"

// Content sections that carry links.
const (
	SectionProjects = "projects"
	SectionArticles = "articles"
	SectionHobbies  = "hobbies"
	SectionCareer   = "career"
	SectionSocials  = "socials"
)

// Content is the site content data file. Only the parts that carry
// external links are modeled; everything else is presentation data.
type Content struct {
	Projects []ProjectGroup `yaml:"projects"`
	Articles []Article      `yaml:"articles"`
	Hobbies  []Hobby        `yaml:"hobbies"`
	Career   []CareerItem   `yaml:"career"`
	Socials  []SocialLink   `yaml:"socials"`
}

// ProjectGroup groups projects by year.
type ProjectGroup struct {
	Year  string    `yaml:"year"`
	Items []Project `yaml:"items"`
}

// Project is a portfolio work.
type Project struct {
	Title        string        `yaml:"title"`
	PlayLink     *ProjectLink  `yaml:"playLink"`
	RelatedLinks []ProjectLink `yaml:"relatedLinks"`
	XURL         string        `yaml:"xUrl"`
	GitHubURL    string        `yaml:"githubUrl"`
	SteamURL     string        `yaml:"steamUrl"`
}

// ProjectLink is a labeled project link.
type ProjectLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Article is a published article.
type Article struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	URL   string `yaml:"url"`
}

// Hobby is a hobby with favorite links.
type Hobby struct {
	Name      string      `yaml:"name"`
	Favorites []HobbyLink `yaml:"favorites"`
}

// HobbyLink is a favorite item of a hobby.
type HobbyLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Note  string `yaml:"note"`
}

// CareerItem is an internship, event or club entry.
type CareerItem struct {
	Company string `yaml:"company"`
	URL     string `yaml:"url"`
}

// SocialLink is a profile link.
type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Link is a link found in content.
type Link struct {
	Section string
	Label   string
	URL     string
}

// Links returns every non-empty link in document order.
func (c *Content) Links() []Link {
	var links []Link
	add := func(section, label, url string) {
		if url = strings.TrimSpace(url); url != "" {
			links = append(links, Link{Section: section, Label: label, URL: url})
		}
	}

	for _, group := range c.Projects {
		for _, p := range group.Items {
			if p.PlayLink != nil {
				add(SectionProjects, p.PlayLink.Label, p.PlayLink.URL)
			}
			for _, l := range p.RelatedLinks {
				add(SectionProjects, l.Label, l.URL)
			}
			add(SectionProjects, p.Title, p.XURL)
			add(SectionProjects, p.Title, p.GitHubURL)
			add(SectionProjects, p.Title, p.SteamURL)
		}
	}
	for _, a := range c.Articles {
		add(SectionArticles, a.Title, a.URL)
	}
	for _, h := range c.Hobbies {
		for _, f := range h.Favorites {
			add(SectionHobbies, f.Label, f.URL)
		}
	}
	for _, item := range c.Career {
		add(SectionCareer, item.Company, item.URL)
	}
	for _, s := range c.Socials {
		add(SectionSocials, s.Label, s.URL)
	}
	return links
}

// LinkFilter selects links by section. An empty filter matches all links.
type LinkFilter struct {
	Sections []string
}

// Match returns true if the link passes the filter.
func (f LinkFilter) Match(link Link) bool {
	if len(f.Sections) == 0 {
		return true
	}
	for _, s := range f.Sections {
		if strings.EqualFold(s, link.Section) {
			return true
		}
	}
	return false
}

// DistinctURLs returns the http(s) URLs of links that pass filter,
// deduplicated and in first-seen order.
func DistinctURLs(links []Link, filter LinkFilter) []string {
	seen := make(map[string]struct{}, len(links))
	var urls []string
	for _, l := range links {
		if !filter.Match(l) || !IsHTTPURL(l.URL) {
			continue
		}
		if _, ok := seen[l.URL]; ok {
			continue
		}
		seen[l.URL] = struct{}{}
		urls = append(urls, l.URL)
	}
	return urls
}

// ContentLoader reads site content from storage.
type ContentLoader interface {
	LoadContent(path string) (*Content, error)
}
