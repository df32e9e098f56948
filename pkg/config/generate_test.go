package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/registry"
)

func TestGenerateConfigContent(t *testing.T) {
	reg := registry.New([]cop.Cop{
		{Badge: cop.ParseBadge("Lint/Debugger"), Safe: true},
		{Badge: cop.ParseBadge("Style/Risky"), Safe: false},
		{Badge: cop.ParseBadge("Metrics/Fresh"), Enabled: cop.StatusPending, Safe: true},
	})

	content, err := GenerateConfigContent(reg)
	require.NoError(t, err)

	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "[log]")
	assert.Contains(t, content, `# ["Lint/Debugger"]`)
	assert.Contains(t, content, `# ["Style/Risky"]`)
	assert.Contains(t, content, "# safe = false")
	assert.Contains(t, content, `# enabled = "pending"`)

	// Cop sections arrive commented out.
	assert.NotContains(t, content, "\n[\"Lint/Debugger\"]")
}
