package services

import (
	"fmt"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/errs"
)

// Transition is one row of the status table.
type Transition struct {
	From   order.Status
	To     order.Status
	Role   actor.Role
	Action Action
}

type edgeRule struct {
	role   actor.Role
	action Action
}

// getEdgeRules says who drives each edge, keyed by target status. The edges
// themselves come from order.ModeledEdges.
func getEdgeRules() map[order.Status]edgeRule {
	return map[order.Status]edgeRule{
		order.Confirmed:      {role: actor.Receptionist, action: Confirm},
		order.InProgress:     {role: actor.Sprayer, action: StartSpray},
		order.SprayCompleted: {role: actor.Sprayer, action: CompleteSpray},
	}
}

func getTransitions() []Transition {
	rules := getEdgeRules()
	edges := order.ModeledEdges()
	out := make([]Transition, 0, len(edges))
	for _, e := range edges {
		r, ok := rules[e.To]
		if !ok {
			continue
		}
		out = append(out, Transition{From: e.From, To: e.To, Role: r.role, Action: r.action})
	}
	return out
}

// StateMachine applies role-gated status transitions.
//
// Permission is checked before the edge: a request to enter a status the
// actor has no authority over fails with PermissionDenied even when the
// order is not in the matching source status. Targets that no action leads
// to, including every unmodeled edge, fail with InvalidTransition.
type StateMachine struct {
	gate PermissionGate
}

// NewStateMachine builds the transition table on top of gate.
func NewStateMachine(gate PermissionGate) StateMachine {
	return StateMachine{gate: gate}
}

// Transitions returns the modeled table.
func (m StateMachine) Transitions() []Transition {
	return getTransitions()
}

// ActionFor returns the action that leads into target, if any.
func (m StateMachine) ActionFor(target order.Status) (Action, bool) {
	for _, t := range getTransitions() {
		if t.To == target {
			return t.Action, true
		}
	}
	return UnknownAction, false
}

// Transition moves o to target on behalf of a. o is left untouched on error.
func (m StateMachine) Transition(o *order.Order, target order.Status, a actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}

	action, ok := m.ActionFor(target)
	if !ok {
		if err := o.Status().ValidateTransition(target); err != nil {
			return err
		}
		return errs.NewTransitionIsInvalidErrorWithCause(o.Status().String(), target.String(),
			fmt.Errorf("no action leads to %s", target))
	}
	if err := m.gate.CheckRole(o, a, action); err != nil {
		return err
	}
	return o.ChangeStatus(target)
}
