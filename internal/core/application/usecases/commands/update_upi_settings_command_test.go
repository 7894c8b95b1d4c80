package commands_test

import (
	"errors"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/settings"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateUPISettingsCommand(t *testing.T) {
	cmd, err := commands.NewUpdateUPISettingsCommand(newAdmin(t), settings.UPIChanges{Enabled: ptr(false)})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.False(t, *cmd.Changes().Enabled)

	_, err = commands.NewUpdateUPISettingsCommand(newAdmin(t), settings.UPIChanges{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateUPISettingsCommand(newCustomer(t), settings.UPIChanges{Enabled: ptr(true)})
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestUpdateUPISettingsCommandHandler_Handle(t *testing.T) {
	t.Run("updates the singleton", func(t *testing.T) {
		ctx := t.Context()
		current := settings.Default(time.Now().UTC())
		cmd, err := commands.NewUpdateUPISettingsCommand(newAdmin(t), settings.UPIChanges{
			UPIID: ptr("  mama.bakery@okhdfcbank "),
			Phone: ptr("+91 9876543210"),
		})
		require.NoError(t, err)

		repo := new(MockSettingsRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("SettingsRepository").Return(repo).Once(),
			repo.On("Get", ctx).Return(current, nil).Once(),
			repo.On("Update", ctx, current).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockSettingsUoWFactory)
		factory.On("Create").Return(uow).Once()

		updated, err := commands.NewUpdateUPISettingsCommandHandler(factory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "mama.bakery@okhdfcbank", updated.UPI().UPIID())
		assert.True(t, updated.UPI().Enabled())
		assert.Equal(t, settings.DefaultInstructions, updated.UPI().Instructions())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateUPISettingsCommand(newAdmin(t), settings.UPIChanges{Enabled: ptr(false)})
		require.NoError(t, err)

		repo := new(MockSettingsRepository)
		repo.On("Get", ctx).Return(nil, errors.New("connection reset")).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("SettingsRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockSettingsUoWFactory)
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewUpdateUPISettingsCommandHandler(factory).Handle(ctx, cmd)
		require.EqualError(t, err, "connection reset")
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
