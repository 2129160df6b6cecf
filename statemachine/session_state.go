package statemachine

import (
	"fmt"

	"food4u-api/models"
)

// SessionState is the per-account session state
type SessionState string

const (
	StateIdle   SessionState = "IDLE"
	StateActive SessionState = "ACTIVE"
)

// SessionEvent triggers a state change
type SessionEvent string

const (
	EventLogin  SessionEvent = "LOGIN"
	EventLogout SessionEvent = "LOGOUT"
)

// Transition defines a valid state change. SameRole only applies to LOGIN from
// ACTIVE: the requested role must equal the one already active.
type Transition struct {
	From     SessionState `json:"from"`
	Event    SessionEvent `json:"event"`
	To       SessionState `json:"to"`
	SameRole bool         `json:"same_role_only"`
}

// validTransitions is the authoritative session machine definition
var validTransitions = []Transition{
	{From: StateIdle, Event: EventLogin, To: StateActive},
	// re-entrant login under the role already held
	{From: StateActive, Event: EventLogin, To: StateActive, SameRole: true},
	{From: StateActive, Event: EventLogout, To: StateIdle},
	// logout is idempotent
	{From: StateIdle, Event: EventLogout, To: StateIdle},
}

type transitionKey struct {
	From  SessionState
	Event SessionEvent
}

var transitionMap = func() map[transitionKey]Transition {
	m := make(map[transitionKey]Transition)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.Event}] = t
	}
	return m
}()

// StateOf derives the session state from an account's active role
func StateOf(activeRole *models.UserRole) SessionState {
	if activeRole == nil {
		return StateIdle
	}
	return StateActive
}

// CanLogin checks whether a login under requested is allowed given the current active role
func CanLogin(current *models.UserRole, requested models.UserRole) error {
	t, ok := transitionMap[transitionKey{StateOf(current), EventLogin}]
	if !ok {
		return fmt.Errorf("no login transition from %s", StateOf(current))
	}
	if t.SameRole && *current != requested {
		return fmt.Errorf("%w: active as %s, requested %s", models.ErrSessionConflict, *current, requested)
	}
	return nil
}

// Next returns the state reached from current on event
func Next(current SessionState, event SessionEvent) (SessionState, bool) {
	t, ok := transitionMap[transitionKey{current, event}]
	if !ok {
		return current, false
	}
	return t.To, true
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
