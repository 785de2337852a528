// Package guard holds ConstructorGuard, the marker embedded in value objects,
// entities and commands so that zero values can be told apart from values
// built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no
// specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it and call
// Validate from the owner's Validate method:
//
//	type SetFieldCommand struct {
//	    key   order.FieldKey
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SetFieldCommand) Validate() error {
//	    return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
//	}
//
// The guard is immutable and safe to copy or share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
