package util_test

import (
	"testing"
	"time"

	"fintrack-server/src/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateText(t *testing.T) {
	assert.True(t, util.ValidateText("Food"))
	assert.False(t, util.ValidateText(""))
	assert.False(t, util.ValidateText("   "))
}

func TestParseDate(t *testing.T) {
	got, ok := util.ParseDate("2025-04-30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), got)

	got, ok = util.ParseDate("2025-04-30T12:30:00Z")
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())

	for _, raw := range []string{"", "not-a-date", "30/04/2025"} {
		_, ok := util.ParseDate(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}
