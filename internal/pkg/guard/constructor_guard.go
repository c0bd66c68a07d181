// Package guard provides the ConstructorGuard used by value objects, commands
// and queries to tell a constructed value apart from its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was
// not constructed and the caller supplied no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// private field, set it with NewConstructorGuard inside the constructor and
// check it from the type's Validate method:
//
//	type AddDeliveryNoteCommand struct {
//	    note  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c AddDeliveryNoteCommand) Validate() error {
//	    return c.guard.Validate(ErrAddDeliveryNoteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
