package shipment

import (
	"fmt"

	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

// Status represents the delivery state of a shipment.
//
// Unlike a classical state machine there is deliberately no transition
// table: any role-authorized caller may set any of the three values in any
// order, including moving a Delivered shipment back to Pending. Corrections
// by the operator are part of the product behavior, so direction is
// unconstrained on purpose.
//
// Status is a value object that validates membership in the set and provides
// the wire-level strings used in the API and the database.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at creation.
	StatusPending

	// StatusInTransit indicates the shipment is on its way.
	StatusInTransit

	// StatusDelivered indicates the shipment reached its recipient.
	// It is not final: an admin may still reassign any status.
	StatusDelivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusInTransit: "In Transit",
		StatusDelivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusInTransit: "In Transit",
		StatusDelivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: StatusPending, StatusInTransit, StatusDelivered.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status:
// "Pending", "In Transit", or "Delivered". Invalid values return "Unknown".
// Implements the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire-level status name.
// Accepts exactly the three valid names, case-sensitively; anything else is
// a validation error so a typo in a request never reaches storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}
