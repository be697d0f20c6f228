package audits_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

func TestSEOCollectsDocumentEvidence(t *testing.T) {
	page := &fakePage{responses: map[string]string{
		"has_meta_description": `{
			"title": "Example Domain",
			"title_length": 14,
			"has_meta_description": true,
			"meta_description_length": 120,
			"has_canonical": true,
			"h1_count": 1,
			"h2_count": 3,
			"images_total": 4,
			"images_with_alt": 3,
			"open_graph_tags": 2
		}`,
	}}
	rc := audit.NewContext("https://example.com/docs", page)

	require.NoError(t, audits.NewSEO().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.SEOKey)
	require.True(t, ok)
	assert.Equal(t, "Example Domain", res.Title)
	assert.True(t, res.HasMetaDescription)
	assert.Equal(t, 1, res.H1Count)
	assert.Equal(t, 3, res.ImagesWithAlt)
	assert.Empty(t, res.MixedCaseSlugs)
}

func TestSEOFlagsMixedCaseSlugs(t *testing.T) {
	page := &fakePage{}
	rc := audit.NewContext("https://example.com/ProductCatalog/aboutUs/faq", page)

	require.NoError(t, audits.NewSEO().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.SEOKey)
	require.True(t, ok)
	assert.Equal(t, []string{"ProductCatalog", "aboutUs"}, res.MixedCaseSlugs)
}

func TestSEOIgnoresSingleWordUppercaseSegments(t *testing.T) {
	page := &fakePage{}
	rc := audit.NewContext("https://example.com/V2/api", page)

	require.NoError(t, audits.NewSEO().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.SEOKey)
	require.True(t, ok)
	assert.Empty(t, res.MixedCaseSlugs)
}

func TestSEOPropagatesEvaluateFailure(t *testing.T) {
	page := &fakePage{evalErrs: map[string]error{"has_meta_description": errFetchTimeout}}
	rc := audit.NewContext("https://example.com", page)

	err := audits.NewSEO().Run(context.Background(), rc)
	require.Error(t, err)

	_, ok := audit.Get(rc, audits.SEOKey)
	assert.False(t, ok, "failed audit must not write its slot")
}
