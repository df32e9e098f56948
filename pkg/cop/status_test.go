package cop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input interface{}
		want  Status
	}{
		{true, StatusEnabled},
		{false, StatusDisabled},
		{"true", StatusEnabled},
		{"false", StatusDisabled},
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"enable", StatusEnabled},
		{"disable", StatusDisabled},
		{nil, StatusUnset},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		require.NoError(t, err, "input %v", tt.input)
		assert.Equal(t, tt.want, got, "input %v", tt.input)
	}
}

func TestParseStatusRejectsGarbage(t *testing.T) {
	_, err := ParseStatus("maybe")
	assert.Error(t, err)

	_, err = ParseStatus(42)
	assert.Error(t, err)
}

func TestSettingSafeOrDefault(t *testing.T) {
	safeCop := Cop{Badge: ParseBadge("Lint/A"), Safe: true}
	unsafeCop := Cop{Badge: ParseBadge("Style/B"), Safe: false}
	yes, no := true, false

	assert.True(t, Setting{}.SafeOrDefault(safeCop))
	assert.False(t, Setting{}.SafeOrDefault(unsafeCop))
	assert.False(t, Setting{Safe: &no}.SafeOrDefault(safeCop))
	assert.True(t, Setting{Safe: &yes}.SafeOrDefault(unsafeCop))
}
