// Package actor models the authenticated caller of the engine: an identity
// plus the set of marketplace roles it holds.
package actor

import (
	"errors"
	"slices"
	"strings"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the identity returned by the IdentityProvider.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	roles []Role

	guard guard.ConstructorGuard
}

// NewActor requires a valid id and at least one valid role. Duplicate roles collapse.
func NewActor(id kernel.UUID, roles ...Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setID(id), a.setRoles(roles)); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// Validate ensures the actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the authenticated user id.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Roles returns a copy of the role set in ascending order.
func (a Actor) Roles() []Role {
	return slices.Clone(a.roles)
}

// HasRole reports whether r is in the role set.
func (a Actor) HasRole(r Role) bool {
	return slices.Contains(a.roles, r)
}

// String renders "id[ROLE,...]" for logs and error messages.
func (a Actor) String() string {
	names := make([]string, 0, len(a.roles))
	for _, r := range a.roles {
		names = append(names, r.String())
	}
	return a.id.String() + "[" + strings.Join(names, ",") + "]"
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRoles(roles []Role) error {
	if len(roles) == 0 {
		return errs.NewValueIsRequiredError("roles")
	}
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	set := slices.Clone(roles)
	slices.Sort(set)
	a.roles = slices.Compact(set)
	return nil
}
