package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpoch(t *testing.T) {
	assert.True(t, IsEpoch(Epoch))
	assert.True(t, IsEpoch(time.Time{}))
	assert.True(t, IsEpoch(FromUnix(0)))
	assert.False(t, IsEpoch(FromUnix(1700000000)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)
}
