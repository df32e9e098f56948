package export

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copperlint/copper/pkg/cop"
	"github.com/copperlint/copper/pkg/registry"
)

func TestWriteXML(t *testing.T) {
	reg := registry.New([]cop.Cop{
		{Badge: cop.ParseBadge("Lint/Debugger"), Description: "Flags debugger calls.", Safe: true},
		{Badge: cop.ParseBadge("Style/Risky"), Safe: false},
		{Badge: cop.ParseBadge("Lint/Fresh"), Enabled: cop.StatusPending, Safe: true},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, reg))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("registry")
	require.NotNil(t, root)
	assert.Equal(t, "3", root.SelectAttrValue("cops", ""))

	departments := root.SelectElements("department")
	require.Len(t, departments, 2)
	// First-occurrence order, never alphabetical.
	assert.Equal(t, "Lint", departments[0].SelectAttrValue("name", ""))
	assert.Equal(t, "Style", departments[1].SelectAttrValue("name", ""))

	lintCops := departments[0].SelectElements("cop")
	require.Len(t, lintCops, 2)
	assert.Equal(t, "Lint/Debugger", lintCops[0].SelectAttrValue("name", ""))
	assert.Equal(t, "true", lintCops[0].SelectAttrValue("enabled", ""))
	assert.Equal(t, "pending", lintCops[1].SelectAttrValue("enabled", ""))

	desc := lintCops[0].SelectElement("description")
	require.NotNil(t, desc)
	assert.Equal(t, "Flags debugger calls.", desc.Text())

	styleCops := departments[1].SelectElements("cop")
	require.Len(t, styleCops, 1)
	assert.Equal(t, "false", styleCops[0].SelectAttrValue("safe", ""))
	assert.Nil(t, styleCops[0].SelectElement("description"))
}

func TestWriteXMLEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, registry.New(nil)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("registry")
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElements("department"))
}
