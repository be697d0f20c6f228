package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagelens/pagelens/internal/domain"
)

func TestBandScore(t *testing.T) {
	assert.Equal(t, 100, bandScore(2000, 3000))
	assert.Equal(t, 100, bandScore(3000, 3000))
	assert.Equal(t, 50, bandScore(6000, 3000))
	assert.Equal(t, 0, bandScore(9000, 3000))
	assert.Equal(t, 0, bandScore(20000, 3000))
	assert.Equal(t, 100, bandScore(500, 0), "a zero budget disables the band")
}

func TestOverBudgetSeverity(t *testing.T) {
	assert.Equal(t, domain.SeverityMedium, overBudgetSeverity(4000, 3000))
	assert.Equal(t, domain.SeverityHigh, overBudgetSeverity(6001, 3000))
}

func TestRatioScore(t *testing.T) {
	assert.Equal(t, 100, ratioScore(0, 0), "empty population has nothing to violate")
	assert.Equal(t, 100, ratioScore(5, 5))
	assert.Equal(t, 50, ratioScore(1, 2))
	assert.Equal(t, 0, ratioScore(0, 3))
}

func TestDeductScore(t *testing.T) {
	assert.Equal(t, 100, deductScore(0, 20))
	assert.Equal(t, 60, deductScore(2, 20))
	assert.Equal(t, 0, deductScore(10, 20), "clamped at zero")
}

func TestCategoryBuildTreatsUnsetMetricsAsMissingData(t *testing.T) {
	cat := newCategory(domain.CategoryPWA)
	cat.sub("manifest", 100)
	cat.sub("service_worker", 100)
	cat.sub("https", 100)
	// installable, viewport and theme_color never scored

	got := cat.build()

	assert.Equal(t, []string{"installable", "viewport", "theme_color"}, got.Degraded)
	// 100*(.25+.25+.20); missing metrics keep their weight and contribute 0
	assert.Equal(t, 70, got.Score)
}

func TestCategoryBuildPairsIssuesWithRecommendations(t *testing.T) {
	cat := newCategory(domain.CategorySEO)
	cat.finding(domain.SeverityHigh, "missing document title", "add a title")

	got := cat.build()

	assert.Len(t, got.Issues, 1)
	assert.Len(t, got.Recommendations, 1)
	assert.Equal(t, domain.SeverityHigh, got.Issues[0].Severity)
}
