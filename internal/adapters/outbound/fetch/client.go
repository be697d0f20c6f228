// Package fetch is the out-of-band HTTP collaborator used for robots.txt,
// sitemap and security-header checks.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pagelens/pagelens/internal/domain"
)

// maxBodyBytes caps how much of a response body is read; robots.txt and
// sitemaps beyond this are truncated, not failed.
const maxBodyBytes = 1 << 20

// Client implements domain.Fetcher with a bounded-timeout http.Client.
type Client struct {
	http *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, url string) (*domain.FetchResponse, error) {
	return c.do(ctx, http.MethodGet, url)
}

func (c *Client) Head(ctx context.Context, url string) (*domain.FetchResponse, error) {
	return c.do(ctx, http.MethodHead, url)
}

func (c *Client) do(ctx context.Context, method, url string) (*domain.FetchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "pagelens/"+domain.SchemaVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	var body []byte
	if method != http.MethodHead {
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", url, err)
		}
	}

	return &domain.FetchResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
