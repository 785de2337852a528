// Package services holds the domain services of the spraying engine.
//
// PermissionGate is the role, ownership and status table behind every action.
// StateMachine applies the modeled status transitions on top of it.
// OrderAggregate owns one live order together with its optional edit session
// and exposes the engine's command surface on it.
package services
