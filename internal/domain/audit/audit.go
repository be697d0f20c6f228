package audit

import "context"

// Audit is one pluggable inspection unit. All output goes through Context
// slots; an audit must not assume any other audit ran unless it declares
// that slot in Reads.
type Audit interface {
	// Name identifies the audit and the slot(s) it writes.
	Name() string

	// Reads declares the audit names whose slots this audit consumes.
	// The registry topologically sorts audits from these declarations and
	// rejects unknown names and cycles at registration time.
	Reads() []string

	// PageBound reports whether the audit injects scripts into or reads
	// the live DOM of the driven page. Page-bound audits run serially;
	// out-of-band audits may run concurrently with everything else.
	PageBound() bool

	Run(ctx context.Context, rc *Context) error
}
