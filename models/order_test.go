package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderAccepted, true},
		{OrderPending, OrderRejected, true},
		{OrderPending, OrderCompleted, false},
		{OrderPending, OrderPending, false},
		{OrderAccepted, OrderCompleted, true},
		{OrderAccepted, OrderAccepted, false},
		{OrderAccepted, OrderRejected, false},
		{OrderAccepted, OrderPending, false},
		{OrderRejected, OrderAccepted, false},
		{OrderRejected, OrderCompleted, false},
		{OrderCompleted, OrderAccepted, false},
		{OrderCompleted, OrderPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderAccepted.Terminal())
	assert.True(t, OrderRejected.Terminal())
	assert.True(t, OrderCompleted.Terminal())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderAccepted, OrderRejected, OrderCompleted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleFarmer, RoleBuyer, RoleAdmin} {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("superadmin").Valid())
	assert.False(t, Role("").Valid())
}
