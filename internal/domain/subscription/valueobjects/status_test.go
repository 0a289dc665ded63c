package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from SubscriptionStatus
		to   SubscriptionStatus
		want bool
	}{
		{StatusIncomplete, StatusActive, true},
		{StatusTrialing, StatusActive, true},
		{StatusActive, StatusPastDue, true},
		{StatusActive, StatusCanceled, true},
		{StatusActive, StatusPaused, true},
		{StatusPaused, StatusActive, true},
		{StatusPastDue, StatusActive, true},
		{StatusPastDue, StatusUnpaid, true},
		{StatusPastDue, StatusCanceled, true},
		{StatusCanceled, StatusActive, false},
		{StatusUnpaid, StatusActive, false},
		{StatusIncomplete, StatusPastDue, false},
		{StatusTrialing, StatusPaused, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSubscriptionStatus_Flags(t *testing.T) {
	assert.True(t, StatusActive.GrantsAccess())
	assert.True(t, StatusTrialing.GrantsAccess())
	assert.False(t, StatusPastDue.GrantsAccess())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.True(t, StatusUnpaid.IsTerminal())
	assert.False(t, StatusPaused.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusPastDue, ParseStatus("past_due"))
	assert.Equal(t, StatusCanceled, ParseStatus("incomplete_expired"))
	assert.Equal(t, StatusIncomplete, ParseStatus("something_new"))
}

func TestNewTier(t *testing.T) {
	tier, err := NewTier("plus")
	assert.NoError(t, err)
	assert.Equal(t, TierPlus, tier)

	_, err = NewTier("enterprise")
	assert.Error(t, err)
}
