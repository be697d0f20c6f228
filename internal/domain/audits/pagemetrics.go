// Package audits holds the concrete analyzers. Each audit writes exactly
// one typed slot named after itself; the scoring package reads the slots.
package audits

import (
	"context"
	"fmt"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const PageMetricsName = "pagemetrics"

// PageMetricsKey is the slot written by the PageMetrics audit.
var PageMetricsKey = audit.NewKey[PageMetricsResult](PageMetricsName)

// PageMetricsResult carries navigation and paint timings plus network
// totals collected from the live page's performance entries.
type PageMetricsResult struct {
	LoadTimeMs             float64 `json:"load_time_ms"`
	DOMContentLoadedMs     float64 `json:"dom_content_loaded_ms"`
	FirstContentfulPaintMs float64 `json:"first_contentful_paint_ms"`
	TransferSizeBytes      float64 `json:"transfer_size_bytes"`
	RequestCount           int     `json:"request_count"`
}

const pageMetricsScript = `(() => {
	const nav = performance.getEntriesByType("navigation")[0];
	const paints = performance.getEntriesByType("paint");
	const fcp = paints.find(p => p.name === "first-contentful-paint");
	const resources = performance.getEntriesByType("resource");
	let transfer = nav ? nav.transferSize : 0;
	for (const r of resources) transfer += r.transferSize;
	return {
		load_time_ms: nav ? nav.loadEventEnd - nav.startTime : 0,
		dom_content_loaded_ms: nav ? nav.domContentLoadedEventEnd - nav.startTime : 0,
		first_contentful_paint_ms: fcp ? fcp.startTime : 0,
		transfer_size_bytes: transfer,
		request_count: resources.length + 1
	};
})()`

// PageMetrics reads the page's Performance API entries.
type PageMetrics struct{}

func NewPageMetrics() *PageMetrics { return &PageMetrics{} }

func (a *PageMetrics) Name() string    { return PageMetricsName }
func (a *PageMetrics) Reads() []string { return nil }
func (a *PageMetrics) PageBound() bool { return true }

func (a *PageMetrics) Run(ctx context.Context, rc *audit.Context) error {
	var res PageMetricsResult
	if err := rc.Page.Evaluate(ctx, pageMetricsScript, &res); err != nil {
		return fmt.Errorf("collecting performance entries: %w", err)
	}
	return audit.Put(rc, PageMetricsKey, res)
}
