package scoring

import (
	"fmt"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

// Fixed deductions for markup hygiene violations.
const (
	perDeprecatedTag   = 10
	perDuplicateID     = 5
	missingDoctypeCost = 20
)

// securityHeader describes one response-header sub-metric.
type securityHeader struct {
	metric         string
	present        func(audits.HeadersResult) bool
	missingSev     string
	missingMessage string
	recommendation string
}

// securityHeaders is evaluated in order so issues come out deterministic.
var securityHeaders = []securityHeader{
	{
		metric:         "hsts",
		present:        func(h audits.HeadersResult) bool { return h.HasStrictTransportSecurity },
		missingSev:     domain.SeverityHigh,
		missingMessage: "Strict-Transport-Security header missing",
		recommendation: "send Strict-Transport-Security to force HTTPS on return visits",
	},
	{
		metric:         "csp",
		present:        func(h audits.HeadersResult) bool { return h.HasContentSecurityPolicy },
		missingSev:     domain.SeverityMedium,
		missingMessage: "Content-Security-Policy header missing",
		recommendation: "define a Content-Security-Policy to limit script sources",
	},
	{
		metric:         "x_content_type_options",
		present:        func(h audits.HeadersResult) bool { return h.HasXContentTypeOptions },
		missingSev:     domain.SeverityLow,
		missingMessage: "X-Content-Type-Options header missing",
		recommendation: "send X-Content-Type-Options: nosniff",
	},
	{
		metric:         "x_frame_options",
		present:        func(h audits.HeadersResult) bool { return h.HasXFrameOptions },
		missingSev:     domain.SeverityLow,
		missingMessage: "X-Frame-Options header missing",
		recommendation: "send X-Frame-Options or a frame-ancestors CSP directive",
	},
	{
		metric:         "referrer_policy",
		present:        func(h audits.HeadersResult) bool { return h.HasReferrerPolicy },
		missingSev:     domain.SeverityLow,
		missingMessage: "Referrer-Policy header missing",
		recommendation: "set a Referrer-Policy to limit referrer leakage",
	},
}

// scoreBestPractices combines the out-of-band security header audit with
// in-page markup hygiene.
func scoreBestPractices(rc *audit.Context) domain.CategoryScore {
	cat := newCategory(domain.CategoryBestPractices)

	if headers, ok := audit.Get(rc, audits.HeadersKey); ok {
		scoreSecurityHeaders(cat, headers)
	}
	if structure, ok := audit.Get(rc, audits.HTMLStructKey); ok {
		scoreMarkupHygiene(cat, structure)
	}

	return cat.build()
}

func scoreSecurityHeaders(cat *category, headers audits.HeadersResult) {
	for _, h := range securityHeaders {
		if !headers.Checked {
			cat.sub(h.metric, unverifiedScore)
			continue
		}
		if h.present(headers) {
			cat.sub(h.metric, 100)
			continue
		}
		cat.sub(h.metric, 0)
		cat.finding(h.missingSev, h.missingMessage, h.recommendation)
	}
	if !headers.Checked {
		cat.finding(domain.SeverityLow,
			"security headers could not be checked",
			"verify the site answers HEAD requests; the check timed out or failed")
	}

	cat.sub("https", boolScore(headers.HTTPS))
	if !headers.HTTPS {
		cat.finding(domain.SeverityHigh,
			"page is not served over HTTPS",
			"serve the site over HTTPS and redirect HTTP traffic")
	}
}

func scoreMarkupHygiene(cat *category, structure audits.HTMLStructResult) {
	deduction := structure.DeprecatedTagCount*perDeprecatedTag +
		structure.DuplicateIDCount*perDuplicateID
	if !structure.HasDoctype {
		deduction += missingDoctypeCost
	}
	cat.sub("deprecated_markup", domain.ClampScore(100-deduction))

	if !structure.HasDoctype {
		cat.finding(domain.SeverityMedium,
			"document has no doctype",
			"start the document with <!DOCTYPE html> to avoid quirks mode")
	}
	if structure.DeprecatedTagCount > 0 {
		cat.finding(domain.SeverityMedium,
			fmt.Sprintf("%d deprecated elements in use", structure.DeprecatedTagCount),
			"replace deprecated elements with CSS-styled equivalents")
	}
	if structure.DuplicateIDCount > 0 {
		cat.finding(domain.SeverityLow,
			fmt.Sprintf("%d duplicate element ids", structure.DuplicateIDCount),
			"make element ids unique within the document")
	}
}
