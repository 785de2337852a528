package services

import (
	"slices"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/order"
	"spraying/internal/pkg/errs"
)

// Action is a user-visible operation on an order.
type Action int

const (
	UnknownAction Action = iota
	Confirm
	StartSpray
	CompleteSpray
	Pay
	ViewQr
	Edit
	AddSprayer
	RemoveSprayer
	SetPrimary
	ToggleAutoAssign
	SubmitFeedback
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		UnknownAction:    "UNKNOWN",
		Confirm:          "CONFIRM",
		StartSpray:       "START_SPRAY",
		CompleteSpray:    "COMPLETE_SPRAY",
		Pay:              "PAY",
		ViewQr:           "VIEW_QR",
		Edit:             "EDIT",
		AddSprayer:       "ADD_SPRAYER",
		RemoveSprayer:    "REMOVE_SPRAYER",
		SetPrimary:       "SET_PRIMARY",
		ToggleAutoAssign: "TOGGLE_AUTO_ASSIGN",
		SubmitFeedback:   "SUBMIT_FEEDBACK",
	}
}

// String returns the wire name, e.g. "ADD_SPRAYER".
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{Confirm, StartSpray, CompleteSpray, Pay, ViewQr, Edit,
		AddSprayer, RemoveSprayer, SetPrimary, ToggleAutoAssign, SubmitFeedback}
}

type capability struct {
	roles    []actor.Role
	statuses []order.Status
	editing  bool
}

func getCapabilities() map[Action]capability {
	return map[Action]capability{
		Confirm:          {roles: []actor.Role{actor.Receptionist}, statuses: []order.Status{order.Pending}},
		StartSpray:       {roles: []actor.Role{actor.Sprayer}, statuses: []order.Status{order.Assigned}},
		CompleteSpray:    {roles: []actor.Role{actor.Sprayer}, statuses: []order.Status{order.InProgress}},
		Pay:              {roles: []actor.Role{actor.Farmer}, statuses: []order.Status{order.SprayCompleted}},
		ViewQr:           {roles: []actor.Role{actor.Sprayer}, statuses: []order.Status{order.SprayCompleted}},
		AddSprayer:       {roles: []actor.Role{actor.Receptionist}, editing: true},
		RemoveSprayer:    {roles: []actor.Role{actor.Receptionist}, editing: true},
		SetPrimary:       {roles: []actor.Role{actor.Receptionist}, editing: true},
		SubmitFeedback:   {roles: []actor.Role{actor.Farmer}, statuses: []order.Status{order.Completed}},
		Edit:             {roles: []actor.Role{actor.Receptionist, actor.Farmer}},
		ToggleAutoAssign: {roles: []actor.Role{actor.Receptionist, actor.Farmer}, editing: true},
	}
}

// PermissionGate decides which actor may perform which action on an order.
//
// Business rules:
//   - Farmers act only on their own orders
//   - Sprayers act only on orders where they are the primary sprayer
//   - An order is editable unless it is InProgress, SprayCompleted or
//     Completed, by a receptionist, or by its farmer while Pending
//   - Staffing actions and ToggleAutoAssign need an open edit session
type PermissionGate struct{}

// NewPermissionGate returns the gate with the built-in capability table.
func NewPermissionGate() PermissionGate {
	return PermissionGate{}
}

// IsAllowed evaluates role, ownership, status and the editing flag.
func (g PermissionGate) IsAllowed(o *order.Order, a actor.Actor, action Action, editing bool) bool {
	c, ok := getCapabilities()[action]
	if !ok || o.Validate() != nil || a.Validate() != nil {
		return false
	}
	if c.editing && !editing {
		return false
	}
	if c.statuses != nil && !slices.Contains(c.statuses, o.Status()) {
		return false
	}
	if action == Edit || action == ToggleAutoAssign {
		return g.canEdit(o, a)
	}
	return g.holdsRole(o, a, c.roles)
}

// Check is IsAllowed returning a PermissionDeniedError.
func (g PermissionGate) Check(o *order.Order, a actor.Actor, action Action, editing bool) error {
	if g.IsAllowed(o, a, action, editing) {
		return nil
	}
	return errs.NewPermissionDeniedError(a.String(), action.String())
}

// CheckRole ignores the order status and the editing flag. State transitions
// use it so that an unauthorized actor is told so before being told the edge
// does not exist.
func (g PermissionGate) CheckRole(o *order.Order, a actor.Actor, action Action) error {
	c, ok := getCapabilities()[action]
	if ok && o.Validate() == nil && a.Validate() == nil && g.holdsRole(o, a, c.roles) {
		return nil
	}
	return errs.NewPermissionDeniedError(a.String(), action.String())
}

// Capabilities lists the actions a may take on o right now.
func (g PermissionGate) Capabilities(o *order.Order, a actor.Actor, editing bool) []Action {
	var out []Action
	for _, action := range Actions() {
		if g.IsAllowed(o, a, action, editing) {
			out = append(out, action)
		}
	}
	return out
}

func (g PermissionGate) canEdit(o *order.Order, a actor.Actor) bool {
	switch o.Status() {
	case order.InProgress, order.SprayCompleted, order.Completed:
		return false
	}
	if a.HasRole(actor.Receptionist) {
		return true
	}
	return o.Status() == order.Pending && g.holdsRole(o, a, []actor.Role{actor.Farmer})
}

func (g PermissionGate) holdsRole(o *order.Order, a actor.Actor, roles []actor.Role) bool {
	for _, r := range roles {
		if !a.HasRole(r) {
			continue
		}
		switch r {
		case actor.Farmer:
			if a.ID().IsEqual(o.FarmerID()) {
				return true
			}
		case actor.Sprayer:
			if p, ok := o.PrimarySprayer(); ok && p.ID().IsEqual(a.ID()) {
				return true
			}
		default:
			return true
		}
	}
	return false
}
