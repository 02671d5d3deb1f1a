package kernel

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Role classifies the permissions of an acting user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleWorker may drive workflow transitions at workshop locations.
	RoleWorker

	// RoleManager may additionally reorder queues and remove orders from them.
	RoleManager

	// RoleAdmin has every manager permission plus administrative maintenance.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleWorker:  "worker",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses a role name as carried in identity claims.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks if the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleWorker && r != RoleManager && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// CanManageQueues reports whether the role may reorder the global queue or
// remove orders from queues.
func (r Role) CanManageQueues() bool {
	return r == RoleManager || r == RoleAdmin
}

// Actor identifies who is performing a command: a user with a role, or the
// system itself. System actors carry no user ID and are used for scheduled
// operations that have no human behind them.
type Actor struct {
	userID *UUID
	role   Role
}

// NewActor creates an actor for an authenticated user.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: &userID, role: role}, nil
}

// NewSystemActor creates the actor used for unattended system operations.
func NewSystemActor() Actor {
	return Actor{role: RoleAdmin}
}

// UserID returns the acting user's ID, or nil for system actors.
func (a Actor) UserID() *UUID {
	return a.userID
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsSystem reports whether the actor is the system rather than a user.
func (a Actor) IsSystem() bool {
	return a.userID == nil
}

// Validate checks that the actor carries a valid role and, for user actors,
// a valid user ID.
func (a Actor) Validate() error {
	if err := a.role.Validate(); err != nil {
		return err
	}
	if a.userID != nil {
		return a.userID.Validate()
	}
	return nil
}
