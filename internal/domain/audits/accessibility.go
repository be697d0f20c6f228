package audits

import (
	"context"
	"fmt"
	"os"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const AccessibilityName = "accessibility"

var AccessibilityKey = audit.NewKey[AccessibilityResult](AccessibilityName)

type AccessibilityResult struct {
	ImagesTotal           int      `json:"images_total"`
	ImagesWithAlt         int      `json:"images_with_alt"`
	FormControlsTotal     int      `json:"form_controls_total"`
	FormControlsLabeled   int      `json:"form_controls_labeled"`
	HasDocumentLanguage   bool     `json:"has_document_language"`
	LandmarkCount         int      `json:"landmark_count"`
	PositiveTabIndexCount int      `json:"positive_tab_index_count"`
	ExternalFindings      []string `json:"external_findings,omitempty"`
}

const accessibilityScript = `(() => {
	const imgs = Array.from(document.querySelectorAll("img"));
	const controls = Array.from(document.querySelectorAll("input:not([type=hidden]), select, textarea"));
	const labeled = controls.filter(c =>
		c.labels && c.labels.length > 0 ||
		c.hasAttribute("aria-label") ||
		c.hasAttribute("aria-labelledby") ||
		c.hasAttribute("title"));
	return {
		images_total: imgs.length,
		images_with_alt: imgs.filter(i => i.hasAttribute("alt")).length,
		form_controls_total: controls.length,
		form_controls_labeled: labeled.length,
		has_document_language: !!(document.documentElement.lang && document.documentElement.lang.trim()),
		landmark_count: document.querySelectorAll("main, nav, header, footer, aside, [role=main], [role=navigation], [role=banner], [role=contentinfo]").length,
		positive_tab_index_count: document.querySelectorAll("[tabindex]:not([tabindex='0']):not([tabindex^='-'])").length
	};
})()`

// externalFindingsScript reads findings a user-provided rule script left
// on the window object. The convention: the injected script assigns an
// array of strings to window.__pagelensA11yFindings.
const externalFindingsScript = `(() => window.__pagelensA11yFindings || [])()`

// Accessibility inspects alt coverage, form labeling, document language,
// landmarks and tab order. An external rule script configured by the user
// is injected before collection; a failure there degrades to "no external
// findings" rather than failing the audit.
type Accessibility struct {
	scriptPath string
}

func NewAccessibility(scriptPath string) *Accessibility {
	return &Accessibility{scriptPath: scriptPath}
}

func (a *Accessibility) Name() string    { return AccessibilityName }
func (a *Accessibility) Reads() []string { return nil }
func (a *Accessibility) PageBound() bool { return true }

func (a *Accessibility) Run(ctx context.Context, rc *audit.Context) error {
	var res AccessibilityResult
	if err := rc.Page.Evaluate(ctx, accessibilityScript, &res); err != nil {
		return fmt.Errorf("inspecting document: %w", err)
	}

	if a.scriptPath != "" {
		if findings, err := a.runExternalRules(ctx, rc); err == nil {
			res.ExternalFindings = findings
		}
	}

	return audit.Put(rc, AccessibilityKey, res)
}

func (a *Accessibility) runExternalRules(ctx context.Context, rc *audit.Context) ([]string, error) {
	script, err := os.ReadFile(a.scriptPath)
	if err != nil {
		return nil, fmt.Errorf("reading rule script: %w", err)
	}
	var ignored any
	if err := rc.Page.Evaluate(ctx, string(script), &ignored); err != nil {
		return nil, fmt.Errorf("injecting rule script: %w", err)
	}
	var findings []string
	if err := rc.Page.Evaluate(ctx, externalFindingsScript, &findings); err != nil {
		return nil, fmt.Errorf("collecting rule findings: %w", err)
	}
	return findings, nil
}
