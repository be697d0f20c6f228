package audits

import (
	"context"
	"fmt"
	"strings"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const PWAName = "pwa"

var PWAKey = audit.NewKey[PWAResult](PWAName)

// installableLoadBudgetMs is the load-time ceiling for the installability
// verdict. A page that takes longer than this to load fails the fast-load
// criterion even if manifest, worker and HTTPS are all present.
const installableLoadBudgetMs = 10000

type PWAResult struct {
	HasManifest      bool   `json:"has_manifest"`
	HasServiceWorker bool   `json:"has_service_worker"`
	HTTPS            bool   `json:"https"`
	HasViewport      bool   `json:"has_viewport"`
	ThemeColor       string `json:"theme_color,omitempty"`
	HasThemeColor    bool   `json:"has_theme_color"`
	Installable      bool   `json:"installable"`
}

const pwaScript = `(async () => {
	let sw = false;
	if ("serviceWorker" in navigator) {
		const reg = await navigator.serviceWorker.getRegistration();
		sw = !!reg;
	}
	const theme = document.querySelector('meta[name="theme-color"]');
	return {
		has_manifest: !!document.querySelector('link[rel="manifest"]'),
		has_service_worker: sw,
		has_viewport: !!document.querySelector('meta[name="viewport"]'),
		theme_color: theme ? theme.content : "",
		has_theme_color: !!(theme && theme.content)
	};
})()`

// PWA checks installability signals. It reads the pagemetrics slot for the
// fast-load criterion, which it declares via Reads so the registry orders
// it after the PageMetrics audit. If that slot is absent (the audit failed)
// the load criterion counts as unmet and the page is not installable.
type PWA struct{}

func NewPWA() *PWA { return &PWA{} }

func (a *PWA) Name() string    { return PWAName }
func (a *PWA) Reads() []string { return []string{PageMetricsName} }
func (a *PWA) PageBound() bool { return true }

func (a *PWA) Run(ctx context.Context, rc *audit.Context) error {
	var res PWAResult
	if err := rc.Page.Evaluate(ctx, pwaScript, &res); err != nil {
		return fmt.Errorf("inspecting document: %w", err)
	}
	res.HTTPS = strings.HasPrefix(rc.URL, "https://")

	loadOK := false
	if metrics, ok := audit.Get(rc, PageMetricsKey); ok {
		loadOK = metrics.LoadTimeMs > 0 && metrics.LoadTimeMs <= installableLoadBudgetMs
	}
	res.Installable = res.HasManifest && res.HasServiceWorker && res.HTTPS && loadOK

	return audit.Put(rc, PWAKey, res)
}
