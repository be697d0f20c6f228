package domain

import (
	"math"
	"sort"
	"time"
)

// SchemaVersion identifies the external report schema. Field names and
// nesting under Report stay stable unless this changes.
const SchemaVersion = "1.0.0"

// Report is the externally stable audit document.
type Report struct {
	Version    string                   `json:"version"`
	Timestamp  time.Time                `json:"timestamp"`
	URL        string                   `json:"url"`
	RunID      string                   `json:"run_id,omitempty"`
	Score      int                      `json:"score"`
	Grade      string                   `json:"grade"`
	Categories map[string]CategoryScore `json:"categories"`
	Audits     map[string]any           `json:"audits"`
	DurationMs int64                    `json:"duration_ms"`
}

// CategoryScore is one scored category (e.g. performance, seo).
// Degraded lists sub-metrics that were scored 0 because their audit
// produced no data, so consumers can discount confidence.
type CategoryScore struct {
	Score           int      `json:"score"`
	Grade           string   `json:"grade"`
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Degraded        []string `json:"degraded,omitempty"`
}

// Issue is a discrete finding contributing to a category's issue list.
type Issue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Summary is the aggregator's output: overall plus per-category scores.
type Summary struct {
	Overall    int
	Grade      string
	Categories map[string]CategoryScore
}

// GradeFor maps a 0-100 score onto a letter grade. This is the single
// grading table; every category and the overall score use it.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ComputeOverall folds category scores into one weighted 0-100 score using
// CategoryWeights. A category absent from the map contributes 0; weights are
// never renormalized, so scores stay comparable across runs with different
// failure patterns.
func ComputeOverall(categories map[string]CategoryScore) int {
	var weighted float64
	for name, weight := range CategoryWeights {
		if cat, ok := categories[name]; ok {
			weighted += float64(cat.Score) * float64(weight) / 100.0
		}
	}
	return ClampScore(int(math.Round(weighted)))
}

// BuildReport projects a computed summary plus raw audit results into the
// external document. It never recomputes scores. Failed audits appear under
// their name as {"error": ...}; the timestamp is metadata only and never
// influences any score.
func BuildReport(url, runID string, startedAt time.Time, duration time.Duration, sum *Summary, slots map[string]any, auditErrs map[string]string) *Report {
	audits := make(map[string]any, len(slots)+len(auditErrs))
	for name, result := range slots {
		audits[name] = result
	}
	for name, msg := range auditErrs {
		audits[name] = map[string]string{"error": msg}
	}

	return &Report{
		Version:    SchemaVersion,
		Timestamp:  startedAt,
		URL:        url,
		RunID:      runID,
		Score:      sum.Overall,
		Grade:      sum.Grade,
		Categories: sum.Categories,
		Audits:     audits,
		DurationMs: duration.Milliseconds(),
	}
}

// CategoryNames returns the configured category names in stable order.
func CategoryNames() []string {
	names := make([]string, 0, len(CategoryWeights))
	for name := range CategoryWeights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
