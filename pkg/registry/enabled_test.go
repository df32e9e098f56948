package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copperlint/copper/pkg/cop"
)

// mapSettings is the simplest possible Settings implementation for tests.
type mapSettings map[string]cop.Setting

func (m mapSettings) ForCop(qualified string) (cop.Setting, bool) {
	s, ok := m[qualified]
	return s, ok
}

func boolPtr(b bool) *bool { return &b }

func TestEnabledDefaultsToAllWhenUnconfigured(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))

	enabled := r.Enabled(mapSettings{}, nil, false)
	assert.Equal(t, []string{"Lint/A", "Style/B"}, enabled.Names())
}

func TestEnabledNilConfig(t *testing.T) {
	r := New(makeCops("Lint/A"))
	assert.Equal(t, []string{"Lint/A"}, r.Enabled(nil, nil, false).Names())
}

func TestEnabledExcludesDisabled(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B", "Metrics/C"))
	cfg := mapSettings{
		"Style/B": {Enabled: cop.StatusDisabled},
	}

	enabled := r.Enabled(cfg, nil, false)
	assert.Equal(t, []string{"Lint/A", "Metrics/C"}, enabled.Names())
}

func TestEnabledExcludesPending(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))
	cfg := mapSettings{
		"Style/B": {Enabled: cop.StatusPending},
	}

	enabled := r.Enabled(cfg, nil, false)
	assert.Equal(t, []string{"Lint/A"}, enabled.Names())
}

func TestEnabledPendingByDefaultStaysDormant(t *testing.T) {
	pending := cop.Cop{Badge: cop.ParseBadge("Lint/Fresh"), Enabled: cop.StatusPending, Safe: true}
	r := New([]cop.Cop{makeCop("Lint/A"), pending})

	enabled := r.Enabled(mapSettings{}, nil, false)
	assert.Equal(t, []string{"Lint/A"}, enabled.Names())

	// Explicit enablement in config wakes it up.
	cfg := mapSettings{"Lint/Fresh": {Enabled: cop.StatusEnabled}}
	enabled = r.Enabled(cfg, nil, false)
	assert.Equal(t, []string{"Lint/A", "Lint/Fresh"}, enabled.Names())
}

func TestEnabledOnlyOverridesDisabled(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))
	cfg := mapSettings{
		"Style/B": {Enabled: cop.StatusDisabled},
	}

	enabled := r.Enabled(cfg, []string{"Style/B"}, false)
	assert.Equal(t, []string{"Lint/A", "Style/B"}, enabled.Names())
}

func TestEnabledOnlyOverridesPending(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))
	cfg := mapSettings{
		"Style/B": {Enabled: cop.StatusPending},
	}

	enabled := r.Enabled(cfg, []string{"Style/B"}, false)
	assert.Equal(t, []string{"Lint/A", "Style/B"}, enabled.Names())
}

func TestEnabledOnlyKeepsRegistryOrder(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B", "Metrics/C"))
	cfg := mapSettings{
		"Lint/A":    {Enabled: cop.StatusDisabled},
		"Metrics/C": {Enabled: cop.StatusDisabled},
	}

	// only is listed out of order; output follows entry positions.
	enabled := r.Enabled(cfg, []string{"Metrics/C", "Lint/A"}, false)
	assert.Equal(t, []string{"Lint/A", "Style/B", "Metrics/C"}, enabled.Names())
}

func TestEnabledSafeOnly(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B", "Metrics/C"))
	cfg := mapSettings{
		"Style/B": {Safe: boolPtr(false)},
	}

	enabled := r.Enabled(cfg, nil, true)
	assert.Equal(t, []string{"Lint/A", "Metrics/C"}, enabled.Names())

	// Without safeOnly the unsafe cop still runs.
	enabled = r.Enabled(cfg, nil, false)
	assert.Equal(t, []string{"Lint/A", "Style/B", "Metrics/C"}, enabled.Names())
}

func TestEnabledSafeOnlyUsesDescriptorDefault(t *testing.T) {
	unsafe := cop.Cop{Badge: cop.ParseBadge("Style/Risky"), Safe: false}
	r := New([]cop.Cop{makeCop("Lint/A"), unsafe})

	enabled := r.Enabled(mapSettings{}, nil, true)
	assert.Equal(t, []string{"Lint/A"}, enabled.Names())

	// Config may declare a cop safe against its descriptor default.
	cfg := mapSettings{"Style/Risky": {Safe: boolPtr(true)}}
	enabled = r.Enabled(cfg, nil, true)
	assert.Equal(t, []string{"Lint/A", "Style/Risky"}, enabled.Names())
}

func TestEnabledOnlyBypassesSafeOnly(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))
	cfg := mapSettings{
		"Style/B": {Safe: boolPtr(false)},
	}

	enabled := r.Enabled(cfg, []string{"Style/B"}, true)
	assert.Equal(t, []string{"Lint/A", "Style/B"}, enabled.Names())
}

func TestEnabledNeverMutatesReceiver(t *testing.T) {
	r := New(makeCops("Lint/A", "Style/B"))
	cfg := mapSettings{"Lint/A": {Enabled: cop.StatusDisabled}}

	_ = r.Enabled(cfg, nil, true)
	assert.Equal(t, []string{"Lint/A", "Style/B"}, r.Names())
}
