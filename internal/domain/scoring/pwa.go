package scoring

import (
	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

func scorePWA(rc *audit.Context) domain.CategoryScore {
	cat := newCategory(domain.CategoryPWA)

	pwa, ok := audit.Get(rc, audits.PWAKey)
	if !ok {
		return cat.build()
	}

	cat.sub("manifest", boolScore(pwa.HasManifest))
	if !pwa.HasManifest {
		cat.finding(domain.SeverityMedium,
			"no web app manifest",
			"link a manifest.json describing name, icons and start URL")
	}

	cat.sub("service_worker", boolScore(pwa.HasServiceWorker))
	if !pwa.HasServiceWorker {
		cat.finding(domain.SeverityMedium,
			"no service worker registered",
			"register a service worker to enable offline support")
	}

	cat.sub("https", boolScore(pwa.HTTPS))
	if !pwa.HTTPS {
		cat.finding(domain.SeverityHigh,
			"page is not served over HTTPS",
			"PWAs require HTTPS; serve the site over TLS")
	}

	cat.sub("installable", boolScore(pwa.Installable))
	if !pwa.Installable {
		cat.finding(domain.SeverityLow,
			"page does not meet installability criteria",
			"provide manifest, service worker, HTTPS and a fast first load")
	}

	cat.sub("viewport", boolScore(pwa.HasViewport))
	if !pwa.HasViewport {
		cat.finding(domain.SeverityLow,
			"no viewport meta tag",
			"add <meta name=\"viewport\"> for mobile rendering")
	}

	cat.sub("theme_color", boolScore(pwa.HasThemeColor))
	if !pwa.HasThemeColor {
		cat.finding(domain.SeverityLow,
			"no theme-color meta tag",
			"add <meta name=\"theme-color\"> to brand the browser chrome")
	}

	return cat.build()
}
