package domain

import (
	"context"
	"net/http"
)

// PageDriver owns browser navigation. Navigation failure is the single
// fatal condition of a run: the caller gets a NavigationError and no
// audits execute.
type PageDriver interface {
	Navigate(ctx context.Context, url string) (Page, error)
}

// Page is one exclusively-owned browser session. Script injection is not
// safe concurrently; page-bound audits must be serialized by the caller.
type Page interface {
	// Evaluate runs a script in the page and unmarshals its JSON result
	// into out. Promises are awaited before unmarshaling.
	Evaluate(ctx context.Context, script string, out any) error
	Screenshot(ctx context.Context) ([]byte, error)
	// ResponseHeaders returns the headers of the main document response.
	ResponseHeaders() map[string]string
	Close(ctx context.Context) error
}

// FetchResponse is the result of one out-of-band HTTP request.
type FetchResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Fetcher performs out-of-band HTTP checks (robots.txt, sitemap.xml,
// security headers) with a bounded timeout per request.
type Fetcher interface {
	Get(ctx context.Context, url string) (*FetchResponse, error)
	Head(ctx context.Context, url string) (*FetchResponse, error)
}

// ConfigLoader loads run configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// ReportWriter persists a report. Failures are PersistError, distinct from
// any audit or aggregation error.
type ReportWriter interface {
	Write(report *Report, path string) error
}
