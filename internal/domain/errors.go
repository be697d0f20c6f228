package domain

import "fmt"

// NavigationError is fatal: the initial page load failed, so no audits ran
// and no partial report exists.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigating to %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// PersistError means a report was produced but could not be written to
// disk. Callers can distinguish it from audit failures.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("writing report to %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
