package scoring

import (
	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
)

// Aggregate turns a populated run context into per-category scores and an
// overall score under the fixed weight tables. It reads the context but
// never mutates it, never re-queries the page, and depends on nothing but
// the slots and the budgets, so calling it twice on the same context
// yields identical output.
func Aggregate(rc *audit.Context, budgets domain.Budgets) *domain.Summary {
	categories := map[string]domain.CategoryScore{
		domain.CategoryPerformance:   scorePerformance(rc, budgets),
		domain.CategoryAccessibility: scoreAccessibility(rc),
		domain.CategorySEO:           scoreSEO(rc),
		domain.CategoryBestPractices: scoreBestPractices(rc),
		domain.CategoryPWA:           scorePWA(rc),
	}

	overall := domain.ComputeOverall(categories)
	return &domain.Summary{
		Overall:    overall,
		Grade:      domain.GradeFor(overall),
		Categories: categories,
	}
}
