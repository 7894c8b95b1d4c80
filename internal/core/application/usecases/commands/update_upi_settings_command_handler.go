package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/settings"
)

type UpdateUPISettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateUPISettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateUPISettingsCommandHandler {
	return UpdateUPISettingsCommandHandler{uowFactory: uowFactory}
}

func (h UpdateUPISettingsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateUPISettingsCommand,
) (*settings.Settings, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	current, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.UpdateUPI(cmd.Changes(), time.Now().UTC())

	if err = repo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
