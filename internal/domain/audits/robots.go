package audits

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
)

const RobotsName = "robots"

var RobotsKey = audit.NewKey[RobotsResult](RobotsName)

// RobotsResult distinguishes "checked and absent" (Checked true, Found
// false) from "could not check" (Checked false), so the aggregator can
// disclose reduced confidence instead of reporting a false negative.
type RobotsResult struct {
	RobotsTxtChecked bool `json:"robots_txt_checked"`
	RobotsTxtFound   bool `json:"robots_txt_found"`
	DisallowsAll     bool `json:"disallows_all"`
	SitemapChecked   bool `json:"sitemap_checked"`
	SitemapFound     bool `json:"sitemap_found"`
}

// Robots fetches robots.txt and sitemap.xml out of band. Timeouts and
// fetch errors degrade to "could not check"; they never fail the audit.
type Robots struct {
	fetcher domain.Fetcher
}

func NewRobots(fetcher domain.Fetcher) *Robots {
	return &Robots{fetcher: fetcher}
}

func (a *Robots) Name() string    { return RobotsName }
func (a *Robots) Reads() []string { return nil }
func (a *Robots) PageBound() bool { return false }

func (a *Robots) Run(ctx context.Context, rc *audit.Context) error {
	base, err := url.Parse(rc.URL)
	if err != nil {
		return fmt.Errorf("parsing target url: %w", err)
	}
	origin := base.Scheme + "://" + base.Host

	var res RobotsResult
	if resp, err := a.fetcher.Get(ctx, origin+"/robots.txt"); err == nil {
		res.RobotsTxtChecked = true
		res.RobotsTxtFound = resp.StatusCode == 200
		if res.RobotsTxtFound {
			res.DisallowsAll = disallowsAll(string(resp.Body))
		}
	}
	if resp, err := a.fetcher.Head(ctx, origin+"/sitemap.xml"); err == nil {
		res.SitemapChecked = true
		res.SitemapFound = resp.StatusCode == 200
	}

	return audit.Put(rc, RobotsKey, res)
}

// disallowsAll reports whether robots.txt blocks every crawler from the
// whole site: a "Disallow: /" rule under a "User-agent: *" group.
func disallowsAll(body string) bool {
	inWildcard := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "user-agent:"):
			agent := strings.TrimSpace(line[len("user-agent:"):])
			inWildcard = agent == "*"
		case inWildcard && strings.HasPrefix(lower, "disallow:"):
			path := strings.TrimSpace(line[len("disallow:"):])
			if path == "/" {
				return true
			}
		}
	}
	return false
}
