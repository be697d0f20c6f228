package scoring

import (
	"fmt"
	"strings"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

const (
	minDescriptionLength = 50
	maxDescriptionLength = 160
	minTitleLength       = 10
	maxTitleLength       = 60
)

// scoreSEO reads two slots: the in-page seo audit and the out-of-band
// robots audit. Either may be absent independently; only the sub-metrics
// backed by the missing slot degrade.
func scoreSEO(rc *audit.Context) domain.CategoryScore {
	cat := newCategory(domain.CategorySEO)

	if seo, ok := audit.Get(rc, audits.SEOKey); ok {
		scoreSEODocument(cat, seo)
	}
	if robots, ok := audit.Get(rc, audits.RobotsKey); ok {
		scoreSEORobots(cat, robots)
	}

	return cat.build()
}

func scoreSEODocument(cat *category, seo audits.SEOResult) {
	switch {
	case !seo.HasMetaDescription:
		cat.sub("meta_description", 0)
		cat.finding(domain.SeverityHigh,
			"missing meta description",
			"add a meta description of 50-160 characters summarizing the page")
	case seo.MetaDescriptionLength < minDescriptionLength || seo.MetaDescriptionLength > maxDescriptionLength:
		cat.sub("meta_description", 60)
		cat.finding(domain.SeverityLow,
			fmt.Sprintf("meta description is %d characters (recommended %d-%d)", seo.MetaDescriptionLength, minDescriptionLength, maxDescriptionLength),
			"rewrite the meta description to fit the recommended length")
	default:
		cat.sub("meta_description", 100)
	}

	switch {
	case seo.TitleLength == 0:
		cat.sub("title", 0)
		cat.finding(domain.SeverityHigh,
			"missing document title",
			"add a descriptive <title> of 10-60 characters")
	case seo.TitleLength < minTitleLength || seo.TitleLength > maxTitleLength:
		cat.sub("title", 60)
		cat.finding(domain.SeverityLow,
			fmt.Sprintf("title is %d characters (recommended %d-%d)", seo.TitleLength, minTitleLength, maxTitleLength),
			"rewrite the title to fit the recommended length")
	default:
		cat.sub("title", 100)
	}

	switch {
	case seo.H1Count == 1:
		cat.sub("headings", 100)
	case seo.H1Count == 0:
		cat.sub("headings", 40)
		cat.finding(domain.SeverityMedium,
			"page has no h1 heading",
			"add exactly one h1 describing the page's main topic")
	default:
		cat.sub("headings", 70)
		cat.finding(domain.SeverityLow,
			fmt.Sprintf("page has %d h1 headings", seo.H1Count),
			"keep a single h1 and demote the others")
	}

	cat.sub("canonical", boolScore(seo.HasCanonical))
	if !seo.HasCanonical {
		cat.finding(domain.SeverityLow,
			"missing canonical link",
			"add <link rel=\"canonical\"> to consolidate duplicate URLs")
	}

	altScore := ratioScore(seo.ImagesWithAlt, seo.ImagesTotal)
	cat.sub("image_alt_text", altScore)
	if altScore < 100 {
		cat.finding(domain.SeverityMedium,
			fmt.Sprintf("%d of %d images lack alt text", seo.ImagesTotal-seo.ImagesWithAlt, seo.ImagesTotal),
			"give every content image descriptive alt text")
	}

	if len(seo.MixedCaseSlugs) > 0 {
		cat.finding(domain.SeverityLow,
			fmt.Sprintf("URL path has mixed-case segments: %s", strings.Join(seo.MixedCaseSlugs, ", ")),
			"use lowercase kebab-case path segments to avoid duplicate URLs")
	}
}

func scoreSEORobots(cat *category, robots audits.RobotsResult) {
	switch {
	case !robots.RobotsTxtChecked:
		cat.sub("robots_txt", unverifiedScore)
		cat.finding(domain.SeverityLow,
			"robots.txt could not be checked",
			"verify robots.txt is reachable; the check timed out or failed")
	case !robots.RobotsTxtFound:
		cat.sub("robots_txt", 0)
		cat.finding(domain.SeverityMedium,
			"no robots.txt found",
			"serve a robots.txt so crawlers know what to index")
	case robots.DisallowsAll:
		cat.sub("robots_txt", 0)
		cat.finding(domain.SeverityHigh,
			"robots.txt disallows all crawlers",
			"remove the blanket Disallow rule unless the site should be unindexed")
	default:
		cat.sub("robots_txt", 100)
	}

	switch {
	case !robots.SitemapChecked:
		cat.sub("sitemap", unverifiedScore)
		cat.finding(domain.SeverityLow,
			"sitemap.xml could not be checked",
			"verify sitemap.xml is reachable; the check timed out or failed")
	case !robots.SitemapFound:
		cat.sub("sitemap", 0)
		cat.finding(domain.SeverityMedium,
			"no sitemap.xml found",
			"publish a sitemap.xml to help crawlers discover pages")
	default:
		cat.sub("sitemap", 100)
	}
}
