package kernel

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

// Role is the coarse permission level of a signed-in user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

var (
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
	ErrInvalidRole           = errs.NewValueIsInvalidError("role")
)

// ParseRole accepts "admin" and "customer" case-insensitively. An empty role means customer.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Actor is the authenticated user on whose behalf a command or query runs.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if role != RoleCustomer && role != RoleAdmin {
		return Actor{}, ErrInvalidRole
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// CanAccess reports whether the actor owns the resource or is an administrator.
func (a Actor) CanAccess(ownerID UUID) bool {
	return a.IsAdmin() || a.id.IsEqual(ownerID)
}
