package services

import (
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"
)

// Operation is the closed set of actions the access policy rules on.
type Operation int

const (
	// OperationUnknown represents an invalid or undefined operation.
	OperationUnknown Operation = iota

	// OperationCreateShipment registers a new shipment owned by the caller.
	OperationCreateShipment

	// OperationListShipments lists shipments; the result set is scoped by
	// role, see AccessPolicy.ListScope.
	OperationListShipments

	// OperationTrackShipment looks a shipment up by tracking number.
	// This operation is public by design: recipients are usually not
	// account holders, so no authentication is required.
	OperationTrackShipment

	// OperationUpdateShipmentStatus changes a shipment's delivery status.
	OperationUpdateShipmentStatus
)

// getOperationStrings returns a map of Operation values to human-readable
// names used in access-denied messages.
func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OperationUnknown:              "Unknown",
		OperationCreateShipment:       "create shipment",
		OperationListShipments:        "list shipments",
		OperationTrackShipment:        "track shipment",
		OperationUpdateShipmentStatus: "update shipment status",
	}
}

// String returns the human-readable name of the operation.
// Implements the fmt.Stringer interface.
func (o Operation) String() string {
	if str, ok := getOperationStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// ListScope describes how a listing result set is filtered for a role.
type ListScope int

const (
	// ListScopeOwn restricts the result set to shipments owned by the caller.
	ListScopeOwn ListScope = iota

	// ListScopeAll returns every shipment regardless of owner.
	ListScopeAll
)

// AccessPolicy is the domain service deciding who may perform which
// operation. It is the single source of truth for permissions: handlers
// consult it uniformly instead of branching on role strings inline.
//
// The rules, by operation:
//
//	                     client   admin
//	create shipment      allow    deny (admins operate, they don't ship)
//	list shipments       allow*   allow*   (*result set scoped, see ListScope)
//	track shipment       allow    allow    (public, no identity required)
//	update status        deny     allow
//
// Track-by-number intentionally bypasses authentication; that is a product
// decision (tracking must work for unauthenticated recipients), not an
// authorization gap.
type AccessPolicy struct{}

// NewAccessPolicy creates the access policy service.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// permissionTable maps each operation to the roles allowed to perform it.
// Operations absent from a role's row are denied. OperationTrackShipment is
// handled before the table is consulted because it needs no identity at all.
func permissionTable() map[Operation]map[account.Role]bool {
	return map[Operation]map[account.Role]bool{
		OperationCreateShipment: {
			account.RoleClient: true,
		},
		OperationListShipments: {
			account.RoleClient: true,
			account.RoleAdmin:  true,
		},
		OperationUpdateShipmentStatus: {
			account.RoleAdmin: true,
		},
	}
}

// Authorize decides whether a caller holding role may perform operation.
// Returns nil when allowed and an AccessDeniedError when not.
//
// OperationTrackShipment is allowed for any caller, authenticated or not,
// so it succeeds even for the zero Role.
func (AccessPolicy) Authorize(role account.Role, operation Operation) error {
	if operation == OperationTrackShipment {
		return nil
	}

	if allowed := permissionTable()[operation]; allowed[role] {
		return nil
	}

	return errs.NewAccessDeniedError(role.String(), operation.String())
}

// ListScope reports how the listing result set is filtered for role:
// admins see every shipment, clients only their own.
//
// The role must be valid; listing always requires a verified identity.
func (p AccessPolicy) ListScope(role account.Role) (ListScope, error) {
	if err := p.Authorize(role, OperationListShipments); err != nil {
		return ListScopeOwn, err
	}

	if role == account.RoleAdmin {
		return ListScopeAll, nil
	}
	return ListScopeOwn, nil
}
