package style

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NotEmpty(t, Registry)

	for _, name := range []string{"Department", "CopName", "Enabled", "Disabled", "Pending", "Unsafe"} {
		_, ok := Registry[name]
		assert.True(t, ok, "missing style %q", name)
	}
}

func TestGetUnknownStyleIsZero(t *testing.T) {
	s := Get("NoSuchStyle")
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestLoadStylesRejectsUnknownColor(t *testing.T) {
	defer func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	}()

	err := LoadStylesFromData([]byte(`
colors: {}
styles:
  Broken:
    foreground: missing
`))
	assert.Error(t, err)
}

func TestShouldColorizeModes(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, ShouldColorize("always", f))
	assert.False(t, ShouldColorize("never", f))
	// A plain file is never a terminal.
	assert.False(t, ShouldColorize("auto", f))
}
