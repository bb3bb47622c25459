package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   OrderStatus
		wantOK bool
	}{
		{"PENDING", OrderStatusPending, true},
		{"confirmed", OrderStatusConfirmed, true},
		{"in_flight", OrderStatusInFlight, true},
		{"  delivered  ", OrderStatusDelivered, true},
		{"Cancelled", OrderStatusCancelled, true},
		{"SHIPPED", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseOrderStatus(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusConfirmed.IsTerminal())
	assert.False(t, OrderStatusInFlight.IsTerminal())
}

func TestNormalizeReferralCode(t *testing.T) {
	code, ok := NormalizeReferralCode("  welcome1 ")
	assert.True(t, ok)
	assert.Equal(t, "WELCOME1", code)

	_, ok = NormalizeReferralCode("ab")
	assert.False(t, ok)

	_, ok = NormalizeReferralCode("has space")
	assert.False(t, ok)

	_, ok = NormalizeReferralCode("code-with-dash")
	assert.False(t, ok)
}
