package scoring

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

// perPositiveTabIndex is the fixed deduction per element with a positive
// tabindex, which overrides the natural focus order.
const perPositiveTabIndex = 20

func scoreAccessibility(rc *audit.Context) domain.CategoryScore {
	cat := newCategory(domain.CategoryAccessibility)

	a11y, ok := audit.Get(rc, audits.AccessibilityKey)
	if !ok {
		return cat.build()
	}

	altScore := ratioScore(a11y.ImagesWithAlt, a11y.ImagesTotal)
	cat.sub("image_alt", altScore)
	if altScore < 100 {
		cat.finding(domain.SeverityHigh,
			fmt.Sprintf("%d of %d images have no alt attribute", a11y.ImagesTotal-a11y.ImagesWithAlt, a11y.ImagesTotal),
			"add alt attributes; use alt=\"\" for purely decorative images")
	}

	labelScore := ratioScore(a11y.FormControlsLabeled, a11y.FormControlsTotal)
	cat.sub("form_labels", labelScore)
	if labelScore < 100 {
		cat.finding(domain.SeverityHigh,
			fmt.Sprintf("%d of %d form controls are unlabeled", a11y.FormControlsTotal-a11y.FormControlsLabeled, a11y.FormControlsTotal),
			"associate every form control with a label or aria-label")
	}

	cat.sub("document_language", boolScore(a11y.HasDocumentLanguage))
	if !a11y.HasDocumentLanguage {
		cat.finding(domain.SeverityMedium,
			"document has no lang attribute",
			"set <html lang=\"...\"> so screen readers pick the right voice")
	}

	cat.sub("landmarks", boolScore(a11y.LandmarkCount > 0))
	if a11y.LandmarkCount == 0 {
		cat.finding(domain.SeverityMedium,
			"no landmark regions found",
			"structure the page with main, nav, header and footer landmarks")
	}

	tabScore := deductScore(a11y.PositiveTabIndexCount, perPositiveTabIndex)
	cat.sub("tab_order", tabScore)
	if a11y.PositiveTabIndexCount > 0 {
		cat.finding(domain.SeverityMedium,
			fmt.Sprintf("%d elements use a positive tabindex", a11y.PositiveTabIndexCount),
			"remove positive tabindex values and rely on document order")
	}

	for _, finding := range a11y.ExternalFindings {
		cat.finding(domain.SeverityMedium, finding,
			"address the finding reported by the configured rule script")
	}

	return cat.build()
}
