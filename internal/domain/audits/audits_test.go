package audits_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/pagelens/pagelens/internal/domain"
)

// fakePage scripts Evaluate responses by matching a fragment of the
// injected script. Unmatched scripts unmarshal an empty object so struct
// fields keep their zero values.
type fakePage struct {
	responses map[string]string
	evalErrs  map[string]error
	shot      []byte
	shotErr   error
	headers   map[string]string
}

func (p *fakePage) Evaluate(_ context.Context, script string, out any) error {
	for frag, err := range p.evalErrs {
		if strings.Contains(script, frag) {
			return err
		}
	}
	for frag, body := range p.responses {
		if strings.Contains(script, frag) {
			return json.Unmarshal([]byte(body), out)
		}
	}
	return json.Unmarshal([]byte(`{}`), out)
}

func (p *fakePage) Screenshot(context.Context) ([]byte, error) {
	if p.shotErr != nil {
		return nil, p.shotErr
	}
	return p.shot, nil
}

func (p *fakePage) ResponseHeaders() map[string]string { return p.headers }
func (p *fakePage) Close(context.Context) error        { return nil }

// fakeFetcher serves canned responses by URL suffix; anything not listed
// errors like a timeout.
type fakeFetcher struct {
	responses map[string]*domain.FetchResponse
}

var errFetchTimeout = errors.New("context deadline exceeded")

func (f *fakeFetcher) lookup(url string) (*domain.FetchResponse, error) {
	for suffix, resp := range f.responses {
		if strings.HasSuffix(url, suffix) {
			return resp, nil
		}
	}
	return nil, errFetchTimeout
}

func (f *fakeFetcher) Get(_ context.Context, url string) (*domain.FetchResponse, error) {
	return f.lookup(url)
}

func (f *fakeFetcher) Head(_ context.Context, url string) (*domain.FetchResponse, error) {
	return f.lookup(url)
}
