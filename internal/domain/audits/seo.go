package audits

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const SEOName = "seo"

var SEOKey = audit.NewKey[SEOResult](SEOName)

// SEOResult is the raw DOM evidence the seo category scores from. The
// robots.txt and sitemap checks live in the robots audit; the aggregator
// reads both slots.
type SEOResult struct {
	Title                 string   `json:"title"`
	TitleLength           int      `json:"title_length"`
	HasMetaDescription    bool     `json:"has_meta_description"`
	MetaDescriptionLength int      `json:"meta_description_length"`
	HasCanonical          bool     `json:"has_canonical"`
	H1Count               int      `json:"h1_count"`
	H2Count               int      `json:"h2_count"`
	ImagesTotal           int      `json:"images_total"`
	ImagesWithAlt         int      `json:"images_with_alt"`
	OpenGraphTags         int      `json:"open_graph_tags"`
	MixedCaseSlugs        []string `json:"mixed_case_slugs,omitempty"`
}

const seoScript = `(() => {
	const meta = name => document.querySelector('meta[name="' + name + '"]');
	const desc = meta("description");
	const title = document.title || "";
	const imgs = Array.from(document.querySelectorAll("img"));
	return {
		title: title,
		title_length: title.length,
		has_meta_description: !!(desc && desc.content && desc.content.trim()),
		meta_description_length: desc && desc.content ? desc.content.trim().length : 0,
		has_canonical: !!document.querySelector('link[rel="canonical"]'),
		h1_count: document.querySelectorAll("h1").length,
		h2_count: document.querySelectorAll("h2").length,
		images_total: imgs.length,
		images_with_alt: imgs.filter(i => i.hasAttribute("alt") && i.getAttribute("alt").trim() !== "").length,
		open_graph_tags: document.querySelectorAll('meta[property^="og:"]').length
	};
})()`

// SEO inspects meta tags, headings and image alt coverage in the DOM, and
// flags mixed-case URL path segments (search engines treat differently
// cased paths as distinct URLs; kebab-case is the safe form).
type SEO struct{}

func NewSEO() *SEO { return &SEO{} }

func (a *SEO) Name() string    { return SEOName }
func (a *SEO) Reads() []string { return nil }
func (a *SEO) PageBound() bool { return true }

func (a *SEO) Run(ctx context.Context, rc *audit.Context) error {
	var res SEOResult
	if err := rc.Page.Evaluate(ctx, seoScript, &res); err != nil {
		return fmt.Errorf("inspecting document: %w", err)
	}
	res.MixedCaseSlugs = mixedCaseSlugs(rc.URL)
	return audit.Put(rc, SEOKey, res)
}

// mixedCaseSlugs returns the path segments of rawURL that mix upper and
// lower case, e.g. "/ProductCatalog" or "/aboutUs".
func mixedCaseSlugs(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	var flagged []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" {
			continue
		}
		lower := strings.ToLower(seg)
		if seg == lower {
			continue
		}
		// camelcase.Split breaks "ProductCatalog" into words; a single
		// word means something like "V2", which is not a casing smell.
		if len(camelcase.Split(seg)) > 1 {
			flagged = append(flagged, seg)
		}
	}
	return flagged
}
