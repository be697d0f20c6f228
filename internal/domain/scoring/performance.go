package scoring

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

// scorePerformance bands each timing and network metric against the
// configured budgets. When the pagemetrics audit produced no data every
// sub-metric stays unscored and shows up in the degraded list.
func scorePerformance(rc *audit.Context, budgets domain.Budgets) domain.CategoryScore {
	cat := newCategory(domain.CategoryPerformance)

	metrics, ok := audit.Get(rc, audits.PageMetricsKey)
	if !ok {
		return cat.build()
	}

	scoreBudgeted(cat, "load_time", metrics.LoadTimeMs, budgets.MaxLoadTimeMs,
		fmt.Sprintf("page load took %.0fms (budget %.0fms)", metrics.LoadTimeMs, budgets.MaxLoadTimeMs),
		"reduce render-blocking resources and defer non-critical scripts")

	scoreBudgeted(cat, "first_contentful_paint", metrics.FirstContentfulPaintMs, budgets.MaxFirstContentfulPaintMs,
		fmt.Sprintf("first contentful paint at %.0fms (budget %.0fms)", metrics.FirstContentfulPaintMs, budgets.MaxFirstContentfulPaintMs),
		"inline critical CSS and preload key requests to paint sooner")

	scoreBudgeted(cat, "dom_content_loaded", metrics.DOMContentLoadedMs, budgets.MaxDOMContentLoadedMs,
		fmt.Sprintf("DOMContentLoaded at %.0fms (budget %.0fms)", metrics.DOMContentLoadedMs, budgets.MaxDOMContentLoadedMs),
		"split large bundles so the parser is not blocked")

	scoreBudgeted(cat, "page_weight", metrics.TransferSizeBytes, budgets.MaxPageWeightBytes,
		fmt.Sprintf("page transferred %.0f bytes (budget %.0f)", metrics.TransferSizeBytes, budgets.MaxPageWeightBytes),
		"compress images and strip unused assets to cut transfer size")

	scoreBudgeted(cat, "request_count", float64(metrics.RequestCount), budgets.MaxRequestCount,
		fmt.Sprintf("%d requests issued (budget %.0f)", metrics.RequestCount, budgets.MaxRequestCount),
		"bundle small assets and drop unused third-party requests")

	return cat.build()
}

func scoreBudgeted(cat *category, metric string, value, budget float64, message, recommendation string) {
	score := bandScore(value, budget)
	cat.sub(metric, score)
	if score < 100 {
		cat.finding(overBudgetSeverity(value, budget), message, recommendation)
	}
}
