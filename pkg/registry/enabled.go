package registry

import "github.com/copperlint/copper/pkg/cop"

// Settings is the configuration lookup the registry consults when deciding
// which cops should run. Absence of a cop's key means its own default
// posture applies.
type Settings interface {
	ForCop(qualified string) (cop.Setting, bool)
}

// Enabled returns the subsequence of cops that should execute under the
// given configuration, in registration order. Names listed in only are
// included unconditionally, bypassing both their configured status and the
// safeOnly check. For everything else a configured false or pending status
// excludes the cop, and with safeOnly set an effective Safe of false
// excludes it as well. Malformed or missing config entries degrade to the
// cop's default posture; this never fails.
func (r *Registry) Enabled(cfg Settings, only []string, safeOnly bool) *Registry {
	forced := make(map[string]bool, len(only))
	for _, name := range only {
		forced[name] = true
	}

	var kept []cop.Cop
	for _, c := range r.cops {
		qn := c.QualifiedName()
		if forced[qn] {
			kept = append(kept, c)
			continue
		}

		var setting cop.Setting
		if cfg != nil {
			setting, _ = cfg.ForCop(qn)
		}

		status := setting.Enabled
		if status == cop.StatusUnset {
			status = c.Enabled
		}
		switch status {
		case cop.StatusDisabled, cop.StatusPending:
			continue
		}

		if safeOnly && !setting.SafeOrDefault(c) {
			continue
		}
		kept = append(kept, c)
	}
	return r.derive(kept)
}
