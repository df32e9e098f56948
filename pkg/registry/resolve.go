package registry

import (
	"fmt"
	"strings"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/errors"
)

// QualifiedCopName resolves a user-supplied cop name, bare or qualified,
// into its canonical qualified form. origin is used only in diagnostics,
// typically the path of the config file the name came from.
//
// Names already registered are returned untouched. A name whose bare part is
// registered under exactly one department resolves to that department,
// emitting a one-line warning when a claimed department had to be corrected.
// A bare part registered under several departments is ambiguous and returns
// an ErrAmbiguousName error. Names matching nothing pass through unchanged
// so that configs referencing cops outside this snapshot keep working.
func (r *Registry) QualifiedCopName(name, origin string) (string, error) {
	badge := cop.ParseBadge(name)
	if r.registered(badge) {
		return name, nil
	}

	candidates := r.qualify(badge)
	switch len(candidates) {
	case 0:
		return name, nil
	case 1:
		return r.resolve(badge, candidates[0], origin), nil
	default:
		return "", ambiguousNameError(name, origin, candidates)
	}
}

// registered reports whether a qualified badge names an existing entry.
func (r *Registry) registered(badge cop.Badge) bool {
	if !badge.Qualified() {
		return false
	}
	for _, c := range r.cops {
		if c.Badge == badge {
			return true
		}
	}
	return false
}

// qualify collects the badges of every entry sharing the bare name, one per
// department, in registration order.
func (r *Registry) qualify(badge cop.Badge) []cop.Badge {
	seen := make(map[string]bool)
	var candidates []cop.Badge
	for _, c := range r.cops {
		if c.Name() != badge.Name {
			continue
		}
		if seen[c.Department()] {
			continue
		}
		seen[c.Department()] = true
		candidates = append(candidates, c.Badge)
	}
	return candidates
}

// resolve settles a name onto its single real badge, warning when the
// supplied name claimed the wrong department. The warning never alters
// control flow.
func (r *Registry) resolve(given, real cop.Badge, origin string) string {
	if !given.Match(real) {
		fmt.Fprintf(r.warn, "%s: %s has the wrong namespace - should be %s\n",
			origin, given, real.Department)
	}
	return real.String()
}

func ambiguousNameError(name, origin string, candidates []cop.Badge) error {
	qualified := make([]string, len(candidates))
	departments := make([]string, len(candidates))
	for i, b := range candidates {
		qualified[i] = b.String()
		departments[i] = b.Department
	}
	return errors.Newf(errors.ErrAmbiguousName,
		"Ambiguous cop name `%s` used in %s needs department qualifier. Did you mean %s?",
		name, origin, orList(qualified)).
		WithDetail("name", name).
		WithDetail("origin", origin).
		WithDetail("candidates", departments)
}

// orList joins candidates as "a or b" for two items and "a, b or c" beyond.
func orList(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
