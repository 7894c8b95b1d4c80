package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/settings"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateUPISettingsCommandIsNotConstructed = errors.New(
	"UpdateUPISettingsCommand must be created via NewUpdateUPISettingsCommand constructor",
)

type UpdateUPISettingsCommand struct {
	changes settings.UPIChanges

	guard guard.ConstructorGuard
}

func NewUpdateUPISettingsCommand(actor kernel.Actor, changes settings.UPIChanges) (UpdateUPISettingsCommand, error) {
	if err := adminOnly(actor, "update settings"); err != nil {
		return UpdateUPISettingsCommand{}, err
	}
	if changes.IsEmpty() {
		return UpdateUPISettingsCommand{}, errs.NewValueIsRequiredError("upi")
	}

	return UpdateUPISettingsCommand{
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUPISettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUPISettingsCommandIsNotConstructed)
}

func (c UpdateUPISettingsCommand) Changes() settings.UPIChanges {
	return c.changes
}
