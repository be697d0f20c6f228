package audits_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

func TestPageMetricsReadsPerformanceEntries(t *testing.T) {
	page := &fakePage{responses: map[string]string{
		"getEntriesByType": `{
			"load_time_ms": 2140.5,
			"dom_content_loaded_ms": 1320,
			"first_contentful_paint_ms": 980.2,
			"transfer_size_bytes": 1482000,
			"request_count": 42
		}`,
	}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewPageMetrics().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.PageMetricsKey)
	require.True(t, ok)
	assert.InDelta(t, 2140.5, res.LoadTimeMs, 0.001)
	assert.InDelta(t, 980.2, res.FirstContentfulPaintMs, 0.001)
	assert.Equal(t, 42, res.RequestCount)
}

func TestPageMetricsEvaluateFailureWritesNoSlot(t *testing.T) {
	page := &fakePage{evalErrs: map[string]error{
		"getEntriesByType": errors.New("execution context destroyed"),
	}}
	rc := audit.NewContext("https://example.com", page)

	err := audits.NewPageMetrics().Run(context.Background(), rc)
	require.Error(t, err)

	_, ok := audit.Get(rc, audits.PageMetricsKey)
	assert.False(t, ok)
}

func TestHTMLStructCountsHygieneProblems(t *testing.T) {
	page := &fakePage{responses: map[string]string{
		"has_doctype": `{
			"has_doctype": true,
			"deprecated_tags": {"font": 3, "center": 1},
			"deprecated_tag_count": 4,
			"duplicate_id_count": 2,
			"heading_order_breaks": 1
		}`,
	}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewHTMLStruct().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.HTMLStructKey)
	require.True(t, ok)
	assert.True(t, res.HasDoctype)
	assert.Equal(t, 4, res.DeprecatedTagCount)
	assert.Equal(t, map[string]int{"font": 3, "center": 1}, res.DeprecatedTags)
	assert.Equal(t, 2, res.DuplicateIDCount)
	assert.Equal(t, 1, res.HeadingOrderBreaks)
}

func TestAccessibilityCollectsBuiltinChecks(t *testing.T) {
	page := &fakePage{responses: map[string]string{
		"images_total": `{
			"images_total": 10,
			"images_with_alt": 7,
			"form_controls_total": 4,
			"form_controls_labeled": 4,
			"has_document_language": true,
			"landmark_count": 3,
			"positive_tab_index_count": 1
		}`,
	}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewAccessibility("").Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.AccessibilityKey)
	require.True(t, ok)
	assert.Equal(t, 10, res.ImagesTotal)
	assert.Equal(t, 7, res.ImagesWithAlt)
	assert.True(t, res.HasDocumentLanguage)
	assert.Equal(t, 1, res.PositiveTabIndexCount)
	assert.Empty(t, res.ExternalFindings)
}

func TestAccessibilityInjectsExternalRuleScript(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "rules.js")
	require.NoError(t, os.WriteFile(scriptPath, []byte("runCustomRules();"), 0o644))

	page := &fakePage{responses: map[string]string{
		"images_total":           `{"images_total": 1, "images_with_alt": 1}`,
		"__pagelensA11yFindings": `["link text is not descriptive", "contrast below 4.5:1"]`,
	}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewAccessibility(scriptPath).Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.AccessibilityKey)
	require.True(t, ok)
	assert.Equal(t, []string{"link text is not descriptive", "contrast below 4.5:1"}, res.ExternalFindings)
}

func TestAccessibilityMissingRuleScriptDegradesQuietly(t *testing.T) {
	page := &fakePage{responses: map[string]string{
		"images_total": `{"images_total": 2, "images_with_alt": 2}`,
	}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewAccessibility("/nonexistent/rules.js").Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.AccessibilityKey)
	require.True(t, ok)
	assert.Equal(t, 2, res.ImagesTotal)
	assert.Empty(t, res.ExternalFindings)
}

func TestScreenshotRecordsCaptureSize(t *testing.T) {
	page := &fakePage{shot: []byte{0x89, 'P', 'N', 'G', 0, 0}}
	rc := audit.NewContext("https://example.com", page)

	require.NoError(t, audits.NewScreenshot().Run(context.Background(), rc))

	res, ok := audit.Get(rc, audits.ScreenshotKey)
	require.True(t, ok)
	assert.Equal(t, 6, res.CapturedBytes)
	assert.Equal(t, page.shot, res.Data)
}

func TestScreenshotFailurePropagates(t *testing.T) {
	page := &fakePage{shotErr: errors.New("target closed")}
	rc := audit.NewContext("https://example.com", page)

	require.Error(t, audits.NewScreenshot().Run(context.Background(), rc))
	_, ok := audit.Get(rc, audits.ScreenshotKey)
	assert.False(t, ok)
}
