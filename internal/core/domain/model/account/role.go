package account

import (
	"fmt"

	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

// Role is the closed set of authorities an account can hold.
// There are exactly two valid roles and the role is fixed at registration:
// no elevation flow exists anywhere in the system.
//
// Role is a value object that validates membership in the set and provides
// string representations for persistence and token claims. Authorization
// decisions are made by the access policy consulting this type, never by
// comparing raw strings in handlers.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleClient is the default role assigned at registration.
	// Clients create shipments for themselves and list only their own.
	RoleClient

	// RoleAdmin is the operator role.
	// Admins list every shipment and are the only callers allowed to
	// change a shipment's status.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "Unknown",
		RoleClient:  "client",
		RoleAdmin:   "admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient: "client",
		RoleAdmin:  "admin",
	}
}

// Validate checks if the Role value is valid.
//
// Valid roles are: RoleClient, RoleAdmin.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire-level name of the role: "client" or "admin".
// Invalid values return "Unknown".
// Implements the fmt.Stringer interface and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a persisted or token-carried role name.
// Accepts exactly "client" and "admin"; anything else is a validation error.
// Registration input is more forgiving, see RoleFromHint.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// RoleFromHint converts the optional role field of a registration request
// into a Role. Only the literal "admin" yields RoleAdmin; every other value,
// including the empty string, falls back to RoleClient.
func RoleFromHint(s string) Role {
	if s == "admin" {
		return RoleAdmin
	}
	return RoleClient
}
