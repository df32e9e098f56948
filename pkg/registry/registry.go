// Package registry owns the ordered catalog of cops: department
// partitioning, name qualification and disambiguation, existence checks and
// config-driven enabling. A Registry is an immutable snapshot; every filter
// returns a new value, so concurrent reads need no synchronization.
package registry

import (
	"io"
	"os"

	"github.com/copperlint/copper/pkg/cop"
)

// Registry wraps an ordered sequence of cop descriptors. Insertion order is
// significant: it determines department enumeration order and the candidate
// order in disambiguation messages, and it is preserved through every
// filtering operation. Duplicate qualified names are kept as-is.
type Registry struct {
	cops []cop.Cop
	warn io.Writer
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithWarningWriter redirects the namespace-correction diagnostic, which
// otherwise goes to stderr.
func WithWarningWriter(w io.Writer) Option {
	return func(r *Registry) {
		r.warn = w
	}
}

// New wraps an ordered snapshot of cop descriptors. Any sequence is
// accepted, including an empty one.
func New(cops []cop.Cop, opts ...Option) *Registry {
	r := &Registry{
		cops: append([]cop.Cop(nil), cops...),
		warn: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// derive builds a filtered registry that keeps the receiver's options.
func (r *Registry) derive(cops []cop.Cop) *Registry {
	return &Registry{cops: cops, warn: r.warn}
}

// Cops returns the entries in registration order. The returned slice is the
// registry's own snapshot and must not be mutated.
func (r *Registry) Cops() []cop.Cop {
	return r.cops
}

// Len returns the number of entries, duplicates included.
func (r *Registry) Len() int {
	return len(r.cops)
}

// Names returns the qualified name of every entry in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.cops))
	for i, c := range r.cops {
		names[i] = c.QualifiedName()
	}
	return names
}

// Departments returns the distinct departments in first-occurrence order.
func (r *Registry) Departments() []string {
	seen := make(map[string]bool, len(r.cops))
	var departments []string
	for _, c := range r.cops {
		d := c.Department()
		if !seen[d] {
			seen[d] = true
			departments = append(departments, d)
		}
	}
	return departments
}

// Group is one bucket of a grouped registry: every descriptor registered
// under the same qualified name, in registration order.
type Group struct {
	Name string
	Cops []cop.Cop
}

// Grouped buckets entries by qualified name, with buckets ordered by the
// first occurrence of each name. Duplicate registrations land in the same
// bucket rather than being collapsed.
func (r *Registry) Grouped() []Group {
	index := make(map[string]int, len(r.cops))
	var groups []Group
	for _, c := range r.cops {
		qn := c.QualifiedName()
		i, ok := index[qn]
		if !ok {
			i = len(groups)
			index[qn] = i
			groups = append(groups, Group{Name: qn})
		}
		groups[i].Cops = append(groups[i].Cops, c)
	}
	return groups
}

// WithDepartment returns a new registry holding only the entries of the
// given department, in their original relative order.
func (r *Registry) WithDepartment(department string) *Registry {
	var kept []cop.Cop
	for _, c := range r.cops {
		if c.Department() == department {
			kept = append(kept, c)
		}
	}
	return r.derive(kept)
}

// WithoutDepartment returns a new registry holding every entry except those
// of the given department, in their original relative order.
func (r *Registry) WithoutDepartment(department string) *Registry {
	var kept []cop.Cop
	for _, c := range r.cops {
		if c.Department() != department {
			kept = append(kept, c)
		}
	}
	return r.derive(kept)
}

// ContainsCopMatching reports whether at least one entry's qualified name is
// a member of the given collection.
func (r *Registry) ContainsCopMatching(names []string) bool {
	if len(names) == 0 || len(r.cops) == 0 {
		return false
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, c := range r.cops {
		if set[c.QualifiedName()] {
			return true
		}
	}
	return false
}

// Equal reports whether two registries hold the same entries in the same
// order, duplicates included.
func (r *Registry) Equal(other *Registry) bool {
	if other == nil || len(r.cops) != len(other.cops) {
		return false
	}
	for i := range r.cops {
		if r.cops[i] != other.cops[i] {
			return false
		}
	}
	return true
}
