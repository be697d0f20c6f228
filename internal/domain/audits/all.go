package audits

import (
	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
)

// All returns the audit set for one run under the given config. The
// screenshot audit only joins when the toggle is on.
func All(cfg domain.Config, fetcher domain.Fetcher) []audit.Audit {
	list := []audit.Audit{
		NewPageMetrics(),
		NewSEO(),
		NewAccessibility(cfg.AccessibilityScript),
		NewHTMLStruct(),
		NewPWA(),
		NewHeaders(fetcher),
		NewRobots(fetcher),
	}
	if cfg.Screenshot {
		list = append(list, NewScreenshot())
	}
	return list
}
