// Package scoring converts populated run-context slots into category
// scores using the fixed weight tables. Aggregation is a pure function of
// the context snapshot: identical slots produce identical output.
package scoring

import (
	"math"

	"github.com/pagelens/pagelens/internal/domain"
)

// unverifiedScore is the sub-score for "checked but could not verify"
// evidence (e.g. the HEAD request for security headers timed out). It sits
// between confirmed-present (100) and confirmed-absent (0) so an
// unreachable endpoint is not reported as a false negative.
const unverifiedScore = 50

// bandScore maps a continuous metric onto 0-100: full score at or under
// budget, decaying linearly to 0 at three times the budget.
func bandScore(value, budget float64) int {
	if budget <= 0 || value <= budget {
		return 100
	}
	poor := budget * 3
	if value >= poor {
		return 0
	}
	return domain.ClampScore(int(math.Round(100 * (poor - value) / (poor - budget))))
}

// overBudgetSeverity grades how badly a metric missed its budget.
func overBudgetSeverity(value, budget float64) string {
	if value > budget*2 {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}

// ratioScore is the direct-percentage rule: part/total scaled to 0-100.
// An empty population scores 100 since there is nothing to violate.
func ratioScore(part, total int) int {
	if total <= 0 {
		return 100
	}
	return domain.ClampScore(int(math.Round(100 * float64(part) / float64(total))))
}

// boolScore is the presence rule for binary metrics.
func boolScore(present bool) int {
	if present {
		return 100
	}
	return 0
}

// deductScore is the fixed-deduction rule for count-based metrics.
func deductScore(violations, perViolation int) int {
	return domain.ClampScore(100 - violations*perViolation)
}

// category accumulates sub-scores and findings for one category, then
// combines them under the category's fixed fractional weights. Sub-metrics
// never given a score are treated as missing data: they contribute 0 under
// their full weight and are listed as degraded. Weights are never
// renormalized.
type category struct {
	name   string
	subs   map[string]int
	issues []domain.Issue
	recs   []string
}

func newCategory(name string) *category {
	return &category{
		name:   name,
		subs:   make(map[string]int),
		issues: []domain.Issue{},
		recs:   []string{},
	}
}

func (c *category) sub(metric string, score int) {
	c.subs[metric] = domain.ClampScore(score)
}

// finding appends an issue and its one-to-one recommendation.
func (c *category) finding(severity, message, recommendation string) {
	c.issues = append(c.issues, domain.Issue{Severity: severity, Message: message})
	c.recs = append(c.recs, recommendation)
}

func (c *category) build() domain.CategoryScore {
	weights := domain.SubWeights[c.name]
	var total float64
	var degraded []string
	for _, metric := range domain.SubMetricOrder[c.name] {
		score, ok := c.subs[metric]
		if !ok {
			degraded = append(degraded, metric)
			continue
		}
		total += float64(score) * weights[metric]
	}
	score := domain.ClampScore(int(math.Round(total)))
	return domain.CategoryScore{
		Score:           score,
		Grade:           domain.GradeFor(score),
		Issues:          c.issues,
		Recommendations: c.recs,
		Degraded:        degraded,
	}
}
