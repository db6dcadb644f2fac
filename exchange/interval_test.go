package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalRoundTrip(t *testing.T) {
	for i := OneMinute; i <= OneMonth; i++ {
		parsed, err := ParseInterval(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}
}

func TestParseIntervalIsCaseSensitive(t *testing.T) {
	minute, err := ParseInterval("1m")
	require.NoError(t, err)
	assert.Equal(t, OneMinute, minute)

	month, err := ParseInterval("1M")
	require.NoError(t, err)
	assert.Equal(t, OneMonth, month)

	_, err = ParseInterval("2m")
	assert.Error(t, err)
}

func TestIntervalStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Interval(99)", Interval(99).String())
}
