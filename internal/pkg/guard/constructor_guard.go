// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it via NewConstructorGuard inside the constructor; a
// zero-value struct then fails Validate.
//
// Example:
//
//	type TrackShipmentQuery struct {
//	    trackingNumber string
//	    guard          guard.ConstructorGuard
//	}
//
//	func NewTrackShipmentQuery(raw string) (TrackShipmentQuery, error) {
//	    // ... validation ...
//	    return TrackShipmentQuery{trackingNumber: raw, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
