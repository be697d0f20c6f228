package audits

import (
	"context"
	"strings"

	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
)

const HeadersName = "headers"

var HeadersKey = audit.NewKey[HeadersResult](HeadersName)

// HeadersResult records which security response headers the server sends.
// Checked is false when the request itself failed, which readers treat as
// reduced confidence rather than "headers absent".
type HeadersResult struct {
	Checked                    bool `json:"checked"`
	HTTPS                      bool `json:"https"`
	HasStrictTransportSecurity bool `json:"has_strict_transport_security"`
	HasContentSecurityPolicy   bool `json:"has_content_security_policy"`
	HasXContentTypeOptions     bool `json:"has_x_content_type_options"`
	HasXFrameOptions           bool `json:"has_x_frame_options"`
	HasReferrerPolicy          bool `json:"has_referrer_policy"`
}

// Headers issues one out-of-band HEAD request and records security header
// presence. When the HEAD fails it falls back to the headers captured
// from the main document's response during navigation; only when neither
// source has evidence is the result written with Checked=false.
type Headers struct {
	fetcher domain.Fetcher
}

func NewHeaders(fetcher domain.Fetcher) *Headers {
	return &Headers{fetcher: fetcher}
}

func (a *Headers) Name() string    { return HeadersName }
func (a *Headers) Reads() []string { return nil }
func (a *Headers) PageBound() bool { return false }

func (a *Headers) Run(ctx context.Context, rc *audit.Context) error {
	res := HeadersResult{
		HTTPS: strings.HasPrefix(rc.URL, "https://"),
	}

	if resp, err := a.fetcher.Head(ctx, rc.URL); err == nil {
		res.Checked = true
		res.HasStrictTransportSecurity = resp.Headers.Get("Strict-Transport-Security") != ""
		res.HasContentSecurityPolicy = resp.Headers.Get("Content-Security-Policy") != ""
		res.HasXContentTypeOptions = resp.Headers.Get("X-Content-Type-Options") != ""
		res.HasXFrameOptions = resp.Headers.Get("X-Frame-Options") != ""
		res.HasReferrerPolicy = resp.Headers.Get("Referrer-Policy") != ""
	} else if rc.Page != nil {
		// Fall back to the document response captured during navigation.
		// Reading the snapshot does not drive the tab, so this is safe
		// while page-bound audits run.
		if captured := rc.Page.ResponseHeaders(); len(captured) > 0 {
			res.Checked = true
			res.HasStrictTransportSecurity = headerPresent(captured, "Strict-Transport-Security")
			res.HasContentSecurityPolicy = headerPresent(captured, "Content-Security-Policy")
			res.HasXContentTypeOptions = headerPresent(captured, "X-Content-Type-Options")
			res.HasXFrameOptions = headerPresent(captured, "X-Frame-Options")
			res.HasReferrerPolicy = headerPresent(captured, "Referrer-Policy")
		}
	}

	return audit.Put(rc, HeadersKey, res)
}

// headerPresent looks up a captured header map, which keeps whatever
// casing the server sent.
func headerPresent(headers map[string]string, name string) bool {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v != ""
		}
	}
	return false
}
