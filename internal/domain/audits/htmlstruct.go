package audits

import (
	"context"
	"fmt"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const HTMLStructName = "htmlstruct"

var HTMLStructKey = audit.NewKey[HTMLStructResult](HTMLStructName)

type HTMLStructResult struct {
	HasDoctype         bool           `json:"has_doctype"`
	DeprecatedTags     map[string]int `json:"deprecated_tags,omitempty"`
	DeprecatedTagCount int            `json:"deprecated_tag_count"`
	DuplicateIDCount   int            `json:"duplicate_id_count"`
	HeadingOrderBreaks int            `json:"heading_order_breaks"`
}

const htmlStructScript = `(() => {
	const deprecated = ["font", "center", "marquee", "blink", "big", "strike", "tt", "frame", "frameset"];
	const tags = {};
	let count = 0;
	for (const t of deprecated) {
		const n = document.getElementsByTagName(t).length;
		if (n > 0) { tags[t] = n; count += n; }
	}
	const ids = {};
	let dupes = 0;
	for (const el of document.querySelectorAll("[id]")) {
		ids[el.id] = (ids[el.id] || 0) + 1;
	}
	for (const id in ids) if (ids[id] > 1) dupes += ids[id] - 1;
	const headings = Array.from(document.querySelectorAll("h1,h2,h3,h4,h5,h6"))
		.map(h => parseInt(h.tagName[1], 10));
	let breaks = 0;
	for (let i = 1; i < headings.length; i++) {
		if (headings[i] > headings[i-1] + 1) breaks++;
	}
	return {
		has_doctype: !!document.doctype,
		deprecated_tags: tags,
		deprecated_tag_count: count,
		duplicate_id_count: dupes,
		heading_order_breaks: breaks
	};
})()`

// HTMLStruct checks document hygiene: doctype, deprecated tags, duplicate
// ids and heading level jumps.
type HTMLStruct struct{}

func NewHTMLStruct() *HTMLStruct { return &HTMLStruct{} }

func (a *HTMLStruct) Name() string    { return HTMLStructName }
func (a *HTMLStruct) Reads() []string { return nil }
func (a *HTMLStruct) PageBound() bool { return true }

func (a *HTMLStruct) Run(ctx context.Context, rc *audit.Context) error {
	var res HTMLStructResult
	if err := rc.Page.Evaluate(ctx, htmlStructScript, &res); err != nil {
		return fmt.Errorf("inspecting document: %w", err)
	}
	return audit.Put(rc, HTMLStructKey, res)
}
