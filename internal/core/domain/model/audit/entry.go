// Package audit provides the immutable audit trail record for workshop activity.
// An Entry documents one workflow action on one order, optionally at one
// location, attributed to the user (or system) who performed it.
//
// Entries are append-only by construction: the type exposes no mutators, and
// the repository port offers only appends and reads. The audit trail is the
// workshop's durable evidence of activity, so every mutating command writes its
// entry in the same transaction as the state change it documents.
package audit

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Action identifies what kind of workflow event an audit entry documents.
type Action string

const (
	ActionCreated         Action = "created"
	ActionUpdated         Action = "updated"
	ActionStarted         Action = "started"
	ActionFinished        Action = "finished"
	ActionPaused          Action = "paused"
	ActionUpdatedQuantity Action = "updated_quantity"
	ActionShipped         Action = "shipped"
	ActionHelpRequested   Action = "help_requested"
)

func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionCreated:         {},
		ActionUpdated:         {},
		ActionStarted:         {},
		ActionFinished:        {},
		ActionPaused:          {},
		ActionUpdatedQuantity: {},
		ActionShipped:         {},
		ActionHelpRequested:   {},
	}
}

// Validate checks if the Action is one of the defined values.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid audit action", string(a)))
	}
	return nil
}

func (a Action) String() string {
	return string(a)
}

// Entry is one immutable audit trail record.
type Entry struct {
	id         kernel.UUID
	action     Action
	actorID    *kernel.UUID
	orderID    kernel.UUID
	locationID *kernel.UUID
	details    string
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for an action on an order.
// The actor is nil for system actions; the location is nil for order-level
// actions that happen outside any station.
func NewEntry(
	id kernel.UUID,
	action Action,
	actorID *kernel.UUID,
	orderID kernel.UUID,
	locationID *kernel.UUID,
	details string,
	recordedAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		action.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:            id,
		action:        action,
		actorID:       actorID,
		orderID:       orderID,
		locationID:    locationID,
		details:       details,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was created through NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Action returns what kind of event the entry documents.
func (e *Entry) Action() Action {
	return e.action
}

// ActorID returns the acting user's ID, or nil for system actions.
func (e *Entry) ActorID() *kernel.UUID {
	return e.actorID
}

// OrderID returns the order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// LocationID returns the location the action happened at, or nil for
// order-level actions.
func (e *Entry) LocationID() *kernel.UUID {
	return e.locationID
}

// Details returns the free-text description of the event.
func (e *Entry) Details() string {
	return e.details
}

// RecordedAt returns when the event happened.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
