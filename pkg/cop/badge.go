package cop

import "strings"

// Badge is the parsed form of a cop name. A fully qualified name such as
// "Metrics/MethodLength" carries both a department and a bare name; a bare
// name such as "MethodLength" carries only the latter.
type Badge struct {
	Department string
	Name       string
}

// ParseBadge splits a cop name on its last slash. Names without a slash
// parse to a badge with an empty department.
func ParseBadge(name string) Badge {
	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return Badge{Name: name}
	}
	return Badge{
		Department: name[:idx],
		Name:       name[idx+1:],
	}
}

// Qualified reports whether the badge carries a department.
func (b Badge) Qualified() bool {
	return b.Department != ""
}

// String returns the canonical "<Department>/<Name>" form, or the bare name
// when no department is set.
func (b Badge) String() string {
	if !b.Qualified() {
		return b.Name
	}
	return b.Department + "/" + b.Name
}

// Match reports whether two badges refer to the same cop, treating a missing
// department on either side as a wildcard.
func (b Badge) Match(other Badge) bool {
	if b.Name != other.Name {
		return false
	}
	if !b.Qualified() || !other.Qualified() {
		return true
	}
	return b.Department == other.Department
}
