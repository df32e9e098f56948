package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperlint/copper/pkg/config"
	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/registry"
)

func helperRegistry() *registry.Registry {
	return registry.New([]cop.Cop{
		{Badge: cop.ParseBadge("Lint/Debugger"), Safe: true},
		{Badge: cop.ParseBadge("Style/Risky"), Safe: false},
		{Badge: cop.ParseBadge("Metrics/MethodLength"), Safe: true},
		{Badge: cop.ParseBadge("Metrics/Fresh"), Enabled: cop.StatusPending, Safe: true},
	})
}

func emptyConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFile("", helperRegistry())
	require.NoError(t, err)
	return cfg
}

func TestBuildRegistryUsesBuiltinCatalog(t *testing.T) {
	reg, err := buildRegistry()
	require.NoError(t, err)
	assert.Greater(t, reg.Len(), 0)
	assert.Contains(t, reg.Departments(), "Lint")
}

func TestFilterDepartments(t *testing.T) {
	reg := filterDepartments(helperRegistry(), []string{"Metrics"})
	assert.Equal(t, []string{"Metrics/MethodLength", "Metrics/Fresh"}, reg.Names())
}

func TestResolveOnly(t *testing.T) {
	resolved, err := resolveOnly(helperRegistry(), []string{"MethodLength", "Lint/Debugger"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Metrics/MethodLength", "Lint/Debugger"}, resolved)
}

func TestResolveOnlyAmbiguous(t *testing.T) {
	reg := registry.New([]cop.Cop{
		{Badge: cop.ParseBadge("Layout/Tab"), Safe: true},
		{Badge: cop.ParseBadge("Style/Tab"), Safe: true},
	})
	_, err := resolveOnly(reg, []string{"Tab"})
	assert.Error(t, err)
}

func TestStatusAndSafeLabels(t *testing.T) {
	cfg := emptyConfig(t)
	cops := helperRegistry().Cops()

	assert.Equal(t, "enabled", statusLabel(cops[0], cfg))
	assert.Equal(t, "pending", statusLabel(cops[3], cfg))
	assert.Equal(t, "safe", safeLabel(cops[0], cfg))
	assert.Equal(t, "unsafe", safeLabel(cops[1], cfg))
}

func TestCopMarkdown(t *testing.T) {
	cfg := emptyConfig(t)
	c := cop.Cop{
		Badge:       cop.ParseBadge("Lint/Debugger"),
		Description: "Flags debugger calls.",
		Safe:        true,
	}

	doc := copMarkdown(c, cfg)
	assert.Contains(t, doc, "# Lint/Debugger")
	assert.Contains(t, doc, "Flags debugger calls.")
	assert.Contains(t, doc, "Department: `Lint`")
	assert.Contains(t, doc, "Status: enabled")
	assert.Contains(t, doc, "Safety: safe")
}
