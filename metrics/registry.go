package metrics

import (
	"sync"

	"github.com/pkg/errors"
)

// A Registry holds a set of collectors by name. Names are unique: a second
// registration under an existing name fails instead of overwriting. It is
// safe for concurrent use.
type Registry struct {
	sync.RWMutex
	collectors []Collector
	names      map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register adds c to the registry. It returns an error wrapping
// ErrDuplicateMetricName if a collector with the same name exists.
func (r *Registry) Register(c Collector) error {
	r.Lock()
	defer r.Unlock()

	name := c.Name()
	if _, ok := r.names[name]; ok {
		return errors.Wrapf(ErrDuplicateMetricName, "%s", name)
	}
	r.names[name] = struct{}{}
	r.collectors = append(r.collectors, c)
	return nil
}

// MustRegister registers every collector and panics on the first error.
// Use it while wiring an application, where a duplicate name is a bug.
func (r *Registry) MustRegister(cs ...Collector) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Unregister removes the collector registered under name. It reports whether
// one was removed.
func (r *Registry) Unregister(name string) bool {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.names[name]; !ok {
		return false
	}
	delete(r.names, name)
	for i, c := range r.collectors {
		if c.Name() == name {
			r.collectors = append(r.collectors[:i:i], r.collectors[i+1:]...)
			break
		}
	}
	return true
}

// Gather returns a snapshot of every registered collector in registration
// order. The error is always nil; it exists to satisfy Gatherer.
func (r *Registry) Gather() ([]Family, error) {
	r.RLock()
	cs := make([]Collector, len(r.collectors))
	copy(cs, r.collectors)
	r.RUnlock()

	fams := make([]Family, 0, len(cs))
	for _, c := range cs {
		fams = append(fams, c.Gather())
	}
	return fams, nil
}

// Gatherers concatenates the output of several gatherers, in order.
type Gatherers []Gatherer

// Gather implements Gatherer. The first failing gatherer aborts the gather.
func (gs Gatherers) Gather() ([]Family, error) {
	var all []Family
	for _, g := range gs {
		fams, err := g.Gather()
		if err != nil {
			return nil, err
		}
		all = append(all, fams...)
	}
	return all, nil
}
