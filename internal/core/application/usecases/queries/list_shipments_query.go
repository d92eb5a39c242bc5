package queries

import (
	"errors"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/kernel"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves the shipments visible to the caller.
// The handler scopes the result set by role: clients see their own
// shipments, admins see everything.
//
// Example:
//
//	query, err := NewListShipmentsQuery(callerID, callerRole)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewListShipmentsQueryHandler(db, policy)
//	shipments, err := handler.Handle(ctx, query)
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	requesterID   kernel.UUID
	requesterRole account.Role

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a listing query for the given caller.
// Both identity fields come from the verified token.
func NewListShipmentsQuery(requesterID kernel.UUID, requesterRole account.Role) (ListShipmentsQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}
	if err := requesterRole.Validate(); err != nil {
		return ListShipmentsQuery{}, err
	}

	return ListShipmentsQuery{
		requesterID:   requesterID,
		requesterRole: requesterRole,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// RequesterID returns the account ID of the caller.
func (q ListShipmentsQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// RequesterRole returns the role of the caller.
func (q ListShipmentsQuery) RequesterRole() account.Role {
	return q.requesterRole
}
