package statemachine_test

import (
	"testing"

	"food4u-api/models"
	"food4u-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestCanLogin(t *testing.T) {
	driver := models.RoleDriver

	assert.NoError(t, statemachine.CanLogin(nil, models.RoleRestaurant), "idle account can log in under any role")
	assert.NoError(t, statemachine.CanLogin(&driver, models.RoleDriver), "re-entrant login under the same role")
	assert.ErrorIs(t, statemachine.CanLogin(&driver, models.RoleRestaurant), models.ErrSessionConflict)
}

func TestNext(t *testing.T) {
	tests := []struct {
		from  statemachine.SessionState
		event statemachine.SessionEvent
		want  statemachine.SessionState
	}{
		{statemachine.StateIdle, statemachine.EventLogin, statemachine.StateActive},
		{statemachine.StateActive, statemachine.EventLogin, statemachine.StateActive},
		{statemachine.StateActive, statemachine.EventLogout, statemachine.StateIdle},
		{statemachine.StateIdle, statemachine.EventLogout, statemachine.StateIdle},
	}
	for _, tt := range tests {
		got, ok := statemachine.Next(tt.from, tt.event)
		assert.True(t, ok, "%s on %s", tt.from, tt.event)
		assert.Equal(t, tt.want, got, "%s on %s", tt.from, tt.event)
	}

	_, ok := statemachine.Next("UNKNOWN", statemachine.EventLogin)
	assert.False(t, ok)
}

func TestStateOf(t *testing.T) {
	role := models.RoleCustomer
	assert.Equal(t, statemachine.StateIdle, statemachine.StateOf(nil))
	assert.Equal(t, statemachine.StateActive, statemachine.StateOf(&role))
	assert.Len(t, statemachine.GetAllTransitions(), 4)
}
