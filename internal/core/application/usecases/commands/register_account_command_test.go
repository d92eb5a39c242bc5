package commands_test

import (
	"testing"

	"github.com/DevonBastiansz/courier-manager/internal/core/application/usecases/commands"
	"github.com/DevonBastiansz/courier-manager/internal/core/domain/model/account"
	"github.com/DevonBastiansz/courier-manager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAccountCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", cmd.Name())
	assert.Equal(t, "jane@example.com", cmd.Email())
	assert.Equal(t, "s3cret", cmd.Password())
	assert.Equal(t, account.RoleClient, cmd.Role())
}

func TestNewRegisterAccountCommand_AdminHint(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand("Root", "root@example.com", "s3cret", "admin")
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, cmd.Role())
}

func TestNewRegisterAccountCommand_UnrecognizedHintDefaultsToClient(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "s3cret", "superuser")
	require.NoError(t, err)
	assert.Equal(t, account.RoleClient, cmd.Role())
}

func TestNewRegisterAccountCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand("", "jane@example.com", "s3cret", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterAccountCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand("Jane Doe", "", "s3cret", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterAccountCommand_EmptyPassword(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand("Jane Doe", "jane@example.com", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegisterAccountCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterAccountCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterAccountCommandIsNotConstructed)
}
