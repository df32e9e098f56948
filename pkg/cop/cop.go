// Package cop defines the descriptor types shared by the registry, the
// manifest loader and the configuration layer: cop identities (badges),
// default postures and per-cop effective settings.
package cop

// Cop describes a single inspection rule as registered: its identity plus
// the default posture declared by whoever defined it. The registry consumes
// these read-only; the same qualified name may legally appear on more than
// one descriptor (a cop redefined under test doubles, for instance) and is
// never deduplicated.
type Cop struct {
	Badge       Badge
	Description string

	// Enabled is the default posture when configuration says nothing.
	// StatusUnset is treated as enabled.
	Enabled Status

	// Safe marks the cop as safe to apply without manual review.
	Safe bool
}

// QualifiedName returns the canonical "<Department>/<Name>" identity.
func (c Cop) QualifiedName() string {
	return c.Badge.String()
}

// Department returns the namespace segment of the cop's identity.
func (c Cop) Department() string {
	return c.Badge.Department
}

// Name returns the bare name segment of the cop's identity.
func (c Cop) Name() string {
	return c.Badge.Name
}

// Setting is the per-cop slice of an effective configuration. Zero values
// mean "unspecified": an unset Enabled defers to the cop's default posture
// and a nil Safe means safe.
type Setting struct {
	Enabled Status
	Safe    *bool
}

// SafeOrDefault resolves the tri-state Safe field against the cop's own
// declared posture.
func (s Setting) SafeOrDefault(c Cop) bool {
	if s.Safe == nil {
		return c.Safe
	}
	return *s.Safe
}
