package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
	"github.com/pagelens/pagelens/internal/domain/scoring"
)

// healthyContext populates every slot with evidence that violates nothing.
func healthyContext(t *testing.T) *audit.Context {
	t.Helper()
	rc := audit.NewContext("https://example.com", nil)

	require.NoError(t, audit.Put(rc, audits.PageMetricsKey, audits.PageMetricsResult{
		LoadTimeMs:             1200,
		DOMContentLoadedMs:     800,
		FirstContentfulPaintMs: 900,
		TransferSizeBytes:      500_000,
		RequestCount:           30,
	}))
	require.NoError(t, audit.Put(rc, audits.SEOKey, audits.SEOResult{
		Title:                 "Example - the canonical example site",
		TitleLength:           36,
		HasMetaDescription:    true,
		MetaDescriptionLength: 120,
		HasCanonical:          true,
		H1Count:               1,
		ImagesTotal:           5,
		ImagesWithAlt:         5,
	}))
	require.NoError(t, audit.Put(rc, audits.RobotsKey, audits.RobotsResult{
		RobotsTxtChecked: true,
		RobotsTxtFound:   true,
		SitemapChecked:   true,
		SitemapFound:     true,
	}))
	require.NoError(t, audit.Put(rc, audits.AccessibilityKey, audits.AccessibilityResult{
		ImagesTotal:         5,
		ImagesWithAlt:       5,
		FormControlsTotal:   3,
		FormControlsLabeled: 3,
		HasDocumentLanguage: true,
		LandmarkCount:       4,
	}))
	require.NoError(t, audit.Put(rc, audits.HeadersKey, audits.HeadersResult{
		Checked:                    true,
		HTTPS:                      true,
		HasStrictTransportSecurity: true,
		HasContentSecurityPolicy:   true,
		HasXContentTypeOptions:     true,
		HasXFrameOptions:           true,
		HasReferrerPolicy:          true,
	}))
	require.NoError(t, audit.Put(rc, audits.HTMLStructKey, audits.HTMLStructResult{
		HasDoctype: true,
	}))
	require.NoError(t, audit.Put(rc, audits.PWAKey, audits.PWAResult{
		HasManifest:      true,
		HasServiceWorker: true,
		HTTPS:            true,
		HasViewport:      true,
		HasThemeColor:    true,
		Installable:      true,
	}))

	return rc
}

func TestAggregateHealthyPage(t *testing.T) {
	sum := scoring.Aggregate(healthyContext(t), domain.DefaultBudgets())

	assert.Equal(t, 100, sum.Overall)
	assert.Equal(t, "A", sum.Grade)
	for _, name := range domain.CategoryNames() {
		cat := sum.Categories[name]
		assert.Equal(t, 100, cat.Score, name)
		assert.Empty(t, cat.Issues, name)
		assert.Empty(t, cat.Degraded, name)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	rc := healthyContext(t)
	budgets := domain.DefaultBudgets()

	first := scoring.Aggregate(rc, budgets)
	second := scoring.Aggregate(rc, budgets)

	assert.Equal(t, first, second)
}

func TestMissingMetaDescriptionZerosSubMetric(t *testing.T) {
	rc := healthyContext(t)
	seo, _ := audit.Get(rc, audits.SEOKey)
	seo.HasMetaDescription = false
	seo.MetaDescriptionLength = 0
	rc2 := rebuildWithSEO(t, rc, seo)

	sum := scoring.Aggregate(rc2, domain.DefaultBudgets())
	cat := sum.Categories[domain.CategorySEO]

	// meta_description carries a quarter of the category weight
	assert.Equal(t, 75, cat.Score)
	require.Len(t, cat.Issues, 1)
	assert.Equal(t, domain.SeverityHigh, cat.Issues[0].Severity)
	assert.Equal(t, "missing meta description", cat.Issues[0].Message)
	require.Len(t, cat.Recommendations, 1)
}

func TestMissingHSTSHeader(t *testing.T) {
	rc := healthyContext(t)
	headers, _ := audit.Get(rc, audits.HeadersKey)
	headers.HasStrictTransportSecurity = false
	rc2 := rebuildWithHeaders(t, rc, headers)

	sum := scoring.Aggregate(rc2, domain.DefaultBudgets())
	cat := sum.Categories[domain.CategoryBestPractices]

	assert.Equal(t, 75, cat.Score)
	require.Len(t, cat.Issues, 1)
	assert.Equal(t, domain.SeverityHigh, cat.Issues[0].Severity)
	assert.Contains(t, cat.Issues[0].Message, "Strict-Transport-Security")
}

func TestUncheckedHeadersScoreAsUnverified(t *testing.T) {
	rc := healthyContext(t)
	rc2 := rebuildWithHeaders(t, rc, audits.HeadersResult{Checked: false, HTTPS: true})

	sum := scoring.Aggregate(rc2, domain.DefaultBudgets())
	cat := sum.Categories[domain.CategoryBestPractices]

	// five header sub-metrics at 50, https and markup hygiene at 100
	assert.Equal(t, 65, cat.Score)
	require.Len(t, cat.Issues, 1)
	assert.Equal(t, domain.SeverityLow, cat.Issues[0].Severity)
}

func TestInstallablePWAScoresHigh(t *testing.T) {
	sum := scoring.Aggregate(healthyContext(t), domain.DefaultBudgets())
	assert.GreaterOrEqual(t, sum.Categories[domain.CategoryPWA].Score, 80)
}

func TestAbsentPageMetricsDegradesOnlyPerformance(t *testing.T) {
	rc := healthyContext(t)
	rebuilt := audit.NewContext(rc.URL, nil)
	for name, value := range rc.Slots() {
		if name == audits.PageMetricsName {
			continue
		}
		require.NoError(t, putRaw(rebuilt, name, value))
	}

	sum := scoring.Aggregate(rebuilt, domain.DefaultBudgets())

	perf := sum.Categories[domain.CategoryPerformance]
	assert.Equal(t, 0, perf.Score)
	assert.Len(t, perf.Degraded, len(domain.SubMetricOrder[domain.CategoryPerformance]))

	for _, name := range []string{domain.CategorySEO, domain.CategoryAccessibility, domain.CategoryBestPractices, domain.CategoryPWA} {
		assert.Equal(t, 100, sum.Categories[name].Score, name)
		assert.Empty(t, sum.Categories[name].Degraded, name)
	}

	// performance's full 30-point weight is lost, never redistributed
	assert.Equal(t, 70, sum.Overall)
	assert.Equal(t, "C", sum.Grade)
}

func TestEmptyContextStaysInBounds(t *testing.T) {
	sum := scoring.Aggregate(audit.NewContext("https://example.com", nil), domain.DefaultBudgets())

	assert.Equal(t, 0, sum.Overall)
	assert.Equal(t, "F", sum.Grade)
	for name, cat := range sum.Categories {
		assert.GreaterOrEqual(t, cat.Score, 0, name)
		assert.LessOrEqual(t, cat.Score, 100, name)
		assert.Len(t, cat.Degraded, len(domain.SubMetricOrder[name]), name)
	}
}

func TestBlanketRobotsDisallowIsHighSeverity(t *testing.T) {
	rc := healthyContext(t)
	robots, _ := audit.Get(rc, audits.RobotsKey)
	robots.DisallowsAll = true

	rebuilt := audit.NewContext(rc.URL, nil)
	for name, value := range rc.Slots() {
		if name == audits.RobotsName {
			continue
		}
		require.NoError(t, putRaw(rebuilt, name, value))
	}
	require.NoError(t, audit.Put(rebuilt, audits.RobotsKey, robots))

	cat := scoring.Aggregate(rebuilt, domain.DefaultBudgets()).Categories[domain.CategorySEO]

	require.NotEmpty(t, cat.Issues)
	found := false
	for _, issue := range cat.Issues {
		if issue.Severity == domain.SeverityHigh {
			found = true
		}
	}
	assert.True(t, found, "blanket disallow should surface a high severity issue")
}

// rebuildWithSEO copies every slot except seo, then writes the given value.
func rebuildWithSEO(t *testing.T, rc *audit.Context, seo audits.SEOResult) *audit.Context {
	t.Helper()
	rebuilt := audit.NewContext(rc.URL, nil)
	for name, value := range rc.Slots() {
		if name == audits.SEOName {
			continue
		}
		require.NoError(t, putRaw(rebuilt, name, value))
	}
	require.NoError(t, audit.Put(rebuilt, audits.SEOKey, seo))
	return rebuilt
}

func rebuildWithHeaders(t *testing.T, rc *audit.Context, headers audits.HeadersResult) *audit.Context {
	t.Helper()
	rebuilt := audit.NewContext(rc.URL, nil)
	for name, value := range rc.Slots() {
		if name == audits.HeadersName {
			continue
		}
		require.NoError(t, putRaw(rebuilt, name, value))
	}
	require.NoError(t, audit.Put(rebuilt, audits.HeadersKey, headers))
	return rebuilt
}

// putRaw re-inserts a snapshot value under its original slot name.
func putRaw(rc *audit.Context, name string, value any) error {
	switch v := value.(type) {
	case audits.PageMetricsResult:
		return audit.Put(rc, audits.PageMetricsKey, v)
	case audits.SEOResult:
		return audit.Put(rc, audits.SEOKey, v)
	case audits.RobotsResult:
		return audit.Put(rc, audits.RobotsKey, v)
	case audits.AccessibilityResult:
		return audit.Put(rc, audits.AccessibilityKey, v)
	case audits.HeadersResult:
		return audit.Put(rc, audits.HeadersKey, v)
	case audits.HTMLStructResult:
		return audit.Put(rc, audits.HTMLStructKey, v)
	case audits.PWAResult:
		return audit.Put(rc, audits.PWAKey, v)
	default:
		return nil
	}
}
