package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewPublicSettingsQuery or NewAdminSettingsQuery constructor",
)

// GetSettingsQuery reads the store settings. The public form exposes only
// the UPI payment details; the admin form exposes the whole record.
type GetSettingsQuery struct {
	admin bool

	guard guard.ConstructorGuard
}

func NewPublicSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

func NewAdminSettingsQuery(actor kernel.Actor) (GetSettingsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetSettingsQuery{}, err
	}
	if !actor.IsAdmin() {
		return GetSettingsQuery{}, errs.NewForbiddenError("view settings")
	}
	return GetSettingsQuery{admin: true, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

func (q GetSettingsQuery) IsAdmin() bool {
	return q.admin
}
