// Package report persists audit reports. Persistence failures are
// PersistError so callers can tell "report produced but not saved" apart
// from audit failures.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagelens/pagelens/internal/domain"
)

// Writer implements domain.ReportWriter on the local filesystem.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Write(r *domain.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &domain.PersistError{Path: path, Err: fmt.Errorf("encoding report: %w", err)}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.PersistError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &domain.PersistError{Path: path, Err: err}
	}
	return nil
}

// WriteScreenshot saves a captured screenshot next to the report.
func (w *Writer) WriteScreenshot(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &domain.PersistError{Path: path, Err: err}
	}
	return nil
}
