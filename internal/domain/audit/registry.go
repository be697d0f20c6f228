package audit

import (
	"fmt"
	"sort"
)

// Registry holds the audits for one run in a dependency-respecting order.
// Construction fails fast on undeclared reads, cycles, duplicate names,
// and out-of-band audits that declare slot reads (they run concurrently
// with the page-bound chain, so no ordering can be guaranteed for them).
type Registry struct {
	pageBound []Audit
	outOfBand []Audit
}

func NewRegistry(audits ...Audit) (*Registry, error) {
	byName := make(map[string]Audit, len(audits))
	for _, a := range audits {
		if _, dup := byName[a.Name()]; dup {
			return nil, fmt.Errorf("duplicate audit name %q", a.Name())
		}
		byName[a.Name()] = a
	}

	for _, a := range audits {
		for _, dep := range a.Reads() {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf("audit %q reads undeclared slot %q", a.Name(), dep)
			}
		}
		if !a.PageBound() && len(a.Reads()) > 0 {
			return nil, fmt.Errorf("out-of-band audit %q may not read slots", a.Name())
		}
	}

	ordered, err := topoSort(audits)
	if err != nil {
		return nil, err
	}

	r := &Registry{}
	for _, a := range ordered {
		if a.PageBound() {
			r.pageBound = append(r.pageBound, a)
		} else {
			r.outOfBand = append(r.outOfBand, a)
		}
	}
	return r, nil
}

// PageBound returns the serial audits in an order satisfying every
// declared dependency.
func (r *Registry) PageBound() []Audit { return r.pageBound }

// OutOfBand returns the audits that may run concurrently.
func (r *Registry) OutOfBand() []Audit { return r.outOfBand }

// All returns every registered audit, page-bound first.
func (r *Registry) All() []Audit {
	out := make([]Audit, 0, len(r.pageBound)+len(r.outOfBand))
	out = append(out, r.pageBound...)
	out = append(out, r.outOfBand...)
	return out
}

// topoSort is Kahn's algorithm over the declared-reads graph. Ties are
// broken by name so the run order is deterministic.
func topoSort(audits []Audit) ([]Audit, error) {
	byName := make(map[string]Audit, len(audits))
	indegree := make(map[string]int, len(audits))
	dependents := make(map[string][]string, len(audits))

	for _, a := range audits {
		byName[a.Name()] = a
		indegree[a.Name()] = len(a.Reads())
		for _, dep := range a.Reads() {
			dependents[dep] = append(dependents[dep], a.Name())
		}
	}

	var ready []string
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	var ordered []Audit
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byName[name])

		next := dependents[name]
		sort.Strings(next)
		for _, dep := range next {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		sort.Strings(ready)
	}

	if len(ordered) != len(audits) {
		var stuck []string
		for name, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("dependency cycle among audits: %v", stuck)
	}
	return ordered, nil
}
