package audits

import (
	"context"
	"fmt"

	"github.com/pagelens/pagelens/internal/domain/audit"
)

const ScreenshotName = "screenshot"

var ScreenshotKey = audit.NewKey[ScreenshotResult](ScreenshotName)

// ScreenshotResult holds the capture. Data is excluded from the report
// document; callers persist it as a PNG next to the report instead.
type ScreenshotResult struct {
	Data          []byte `json:"-"`
	CapturedBytes int    `json:"captured_bytes"`
}

// Screenshot captures the full page. Registered only when the config
// toggle is on.
type Screenshot struct{}

func NewScreenshot() *Screenshot { return &Screenshot{} }

func (a *Screenshot) Name() string    { return ScreenshotName }
func (a *Screenshot) Reads() []string { return nil }
func (a *Screenshot) PageBound() bool { return true }

func (a *Screenshot) Run(ctx context.Context, rc *audit.Context) error {
	data, err := rc.Page.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("capturing screenshot: %w", err)
	}
	return audit.Put(rc, ScreenshotKey, ScreenshotResult{
		Data:          data,
		CapturedBytes: len(data),
	})
}
