// Package browser drives a headless Chrome session over the DevTools
// protocol. It is the only adapter allowed to touch the live page; one
// Page value owns one browser tab exclusively for the duration of a run.
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/pagelens/pagelens/internal/domain"
)

const screenshotQuality = 90

// Driver implements domain.PageDriver on chromedp. Each Navigate call
// allocates a fresh browser so concurrent runs never share a tab. The
// navigation timeout bounds only the initial load; the session itself
// lives as long as the run context, so a slow page plus a long audit
// chain never cuts off later Evaluate calls.
type Driver struct {
	log        zerolog.Logger
	headless   bool
	navTimeout time.Duration
}

func NewDriver(logger zerolog.Logger, headless bool, navTimeout time.Duration) *Driver {
	return &Driver{log: logger, headless: headless, navTimeout: navTimeout}
}

func (d *Driver) Navigate(ctx context.Context, url string) (domain.Page, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if !d.headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	p := &page{
		ctx:     tabCtx,
		cancels: []context.CancelFunc{cancelTab, cancelAlloc},
		headers: make(map[string]string),
	}

	// Capture the main document's response headers as they arrive.
	chromedp.ListenTarget(tabCtx, func(ev any) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Type != network.ResourceTypeDocument {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.headersSet {
			return
		}
		p.headersSet = true
		for name, value := range resp.Response.Headers {
			p.headers[name] = fmt.Sprint(value)
		}
	})

	// Timeout-wrap only the load actions. Cancelling this child leaves
	// the tab context intact for the audits that follow.
	navCtx := tabCtx
	if d.navTimeout > 0 {
		var cancelNav context.CancelFunc
		navCtx, cancelNav = context.WithTimeout(tabCtx, d.navTimeout)
		defer cancelNav()
	}

	err := chromedp.Run(navCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		p.Close(ctx)
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}

	d.log.Debug().Str("url", url).Msg("page loaded")
	return p, nil
}

type page struct {
	ctx     context.Context
	cancels []context.CancelFunc

	mu         sync.Mutex
	headers    map[string]string
	headersSet bool
}

func (p *page) Evaluate(ctx context.Context, script string, out any) error {
	return chromedp.Run(p.ctx, chromedp.Evaluate(script, out,
		func(params *runtime.EvaluateParams) *runtime.EvaluateParams {
			return params.WithAwaitPromise(true)
		}))
}

func (p *page) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(p.ctx, chromedp.FullScreenshot(&buf, screenshotQuality)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *page) ResponseHeaders() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(p.headers))
	for k, v := range p.headers {
		out[k] = v
	}
	return out
}

func (p *page) Close(ctx context.Context) error {
	err := chromedp.Cancel(p.ctx)
	for _, cancel := range p.cancels {
		cancel()
	}
	return err
}
