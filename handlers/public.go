package handlers

import (
	"net/http"

	"food4u-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the session state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine": statemachine.GetAllTransitions(),
		"states":        []statemachine.SessionState{statemachine.StateIdle, statemachine.StateActive},
		"description":   "Account session lifecycle: one active role at a time, released on logout",
	})
}
