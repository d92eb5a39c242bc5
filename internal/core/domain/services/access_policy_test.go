package services_test

import (
	"testing"

	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/services"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicy_Authorize(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("client may create shipments, admin may not", func(t *testing.T) {
		require.NoError(t, policy.Authorize(account.RoleClient, services.OperationCreateShipment))

		err := policy.Authorize(account.RoleAdmin, services.OperationCreateShipment)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Contains(t, err.Error(), "admin is not allowed to create shipment")
	})

	t.Run("both roles may list shipments", func(t *testing.T) {
		require.NoError(t, policy.Authorize(account.RoleClient, services.OperationListShipments))
		require.NoError(t, policy.Authorize(account.RoleAdmin, services.OperationListShipments))
	})

	t.Run("only admin may update status", func(t *testing.T) {
		require.NoError(t, policy.Authorize(account.RoleAdmin, services.OperationUpdateShipmentStatus))

		err := policy.Authorize(account.RoleClient, services.OperationUpdateShipmentStatus)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("tracking is public for any caller", func(t *testing.T) {
		// Intentional design: lookup by tracking number requires no identity,
		// so even the zero Role passes.
		require.NoError(t, policy.Authorize(account.RoleUnknown, services.OperationTrackShipment))
		require.NoError(t, policy.Authorize(account.RoleClient, services.OperationTrackShipment))
		require.NoError(t, policy.Authorize(account.RoleAdmin, services.OperationTrackShipment))
	})

	t.Run("unknown role is denied everything but tracking", func(t *testing.T) {
		for _, op := range []services.Operation{
			services.OperationCreateShipment,
			services.OperationListShipments,
			services.OperationUpdateShipmentStatus,
		} {
			err := policy.Authorize(account.RoleUnknown, op)
			require.Error(t, err, "operation: %s", op)
			require.ErrorIs(t, err, errs.ErrAccessDenied)
		}
	})

	t.Run("unknown operation is denied for every role", func(t *testing.T) {
		require.Error(t, policy.Authorize(account.RoleAdmin, services.OperationUnknown))
		require.Error(t, policy.Authorize(account.RoleClient, services.Operation(42)))
	})
}

func TestAccessPolicy_ListScope(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("admin lists unscoped", func(t *testing.T) {
		scope, err := policy.ListScope(account.RoleAdmin)

		require.NoError(t, err)
		assert.Equal(t, services.ListScopeAll, scope)
	})

	t.Run("client lists own shipments only", func(t *testing.T) {
		scope, err := policy.ListScope(account.RoleClient)

		require.NoError(t, err)
		assert.Equal(t, services.ListScopeOwn, scope)
	})

	t.Run("unauthenticated callers cannot list at all", func(t *testing.T) {
		_, err := policy.ListScope(account.RoleUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})
}
