package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role gates administrative operations.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// ParseRole maps the textual role of an identity token to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the authenticated caller an operation runs for. It is supplied by the
// identity collaborator and never looked up by the order core itself.
type Actor struct {
	userID UUID
	role   Role
}

func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role}, nil
}

func (a Actor) UserID() UUID {
	return a.userID
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Owns reports whether the resource owned by userID belongs to the actor.
func (a Actor) Owns(userID UUID) bool {
	return a.userID.IsEqual(userID)
}

func (a Actor) Validate() error {
	if a.role == "" {
		return ErrActorIsNotConstructed
	}
	return a.userID.Validate()
}
