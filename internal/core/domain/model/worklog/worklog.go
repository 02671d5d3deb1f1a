package worklog

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrWorkLogIsNotConstructed is returned when a WorkLog instance was not created
	// through the NewWorkLog or RestoreWorkLog factory methods.
	ErrWorkLogIsNotConstructed = errors.New("WorkLog must be created via NewWorkLog constructor")

	// ErrInvalidQuantity is returned when a completed quantity falls outside the
	// order's [0, totalQuantity] bounds.
	ErrInvalidQuantity = errors.New("completed quantity out of bounds")
)

// WorkLog is the per-(order, location) workflow record: the true unit of
// workflow state in the workshop. It is the aggregate root for status
// transitions, queue membership, and quantity accounting at one station.
//
// WorkLog follows these invariants:
//   - queuePosition is non-nil exactly while the status is InQueue
//   - completedQuantity stays within [0, order total]; downward moves happen
//     only through explicit UpdateQuantity corrections
//   - startedAt is set once, on the first start, and survives pause/resume
//   - Done is terminal: completedAt is set and no transition leaves it
type WorkLog struct {
	id                kernel.UUID
	orderID           kernel.UUID
	locationID        kernel.UUID
	status            Status
	queuePosition     *int
	completedQuantity int
	startedAt         *time.Time
	completedAt       *time.Time

	isConstructed bool
}

// NewWorkLog creates a workflow record for an order at a location.
// The record starts in NotStarted with no queue position and zero quantity.
func NewWorkLog(id kernel.UUID, orderID kernel.UUID, locationID kernel.UUID) (*WorkLog, error) {
	wl := &WorkLog{
		status:        NotStarted,
		isConstructed: true,
	}

	if err := errors.Join(
		wl.setID(id),
		wl.setOrderID(orderID),
		wl.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return wl, nil
}

// RestoreWorkLog reconstructs a WorkLog from persistence.
// It re-checks the queue-position invariant so corrupt rows surface on load.
func RestoreWorkLog(
	id kernel.UUID,
	orderID kernel.UUID,
	locationID kernel.UUID,
	status Status,
	queuePosition *int,
	completedQuantity int,
	startedAt *time.Time,
	completedAt *time.Time,
) (*WorkLog, error) {
	wl, err := NewWorkLog(id, orderID, locationID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if (queuePosition != nil) != (status == InQueue) {
		return nil, errs.NewValueIsInvalidErrorWithCause("queuePosition",
			fmt.Errorf("queue position set: %t, status: %s", queuePosition != nil, status))
	}
	if completedQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedQuantity",
			fmt.Errorf("%d is negative", completedQuantity))
	}

	wl.status = status
	wl.queuePosition = queuePosition
	wl.completedQuantity = completedQuantity
	wl.startedAt = startedAt
	wl.completedAt = completedAt
	return wl, nil
}

// Validate ensures the WorkLog was created through a constructor.
func (w *WorkLog) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkLogIsNotConstructed
	}
	return nil
}

// IsEqual compares two work logs by identifier.
func (w *WorkLog) IsEqual(other *WorkLog) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (w *WorkLog) ID() kernel.UUID {
	return w.id
}

// OrderID returns the order this record tracks.
func (w *WorkLog) OrderID() kernel.UUID {
	return w.orderID
}

// LocationID returns the workshop location this record tracks.
func (w *WorkLog) LocationID() kernel.UUID {
	return w.locationID
}

// Status returns the current workflow status.
func (w *WorkLog) Status() Status {
	return w.status
}

// QueuePosition returns the 1-based rank in the location's queue, or nil when
// the record is not queued.
func (w *WorkLog) QueuePosition() *int {
	return w.queuePosition
}

// CompletedQuantity returns the quantity completed at the location.
func (w *WorkLog) CompletedQuantity() int {
	return w.completedQuantity
}

// StartedAt returns when work first began, or nil if it never did.
func (w *WorkLog) StartedAt() *time.Time {
	return w.startedAt
}

// CompletedAt returns when the location finished, or nil while unfinished.
func (w *WorkLog) CompletedAt() *time.Time {
	return w.completedAt
}

// Enqueue places the record in the location's queue at the given 1-based rank.
// Valid only from NotStarted; fails with ErrInvalidTransition otherwise.
func (w *WorkLog) Enqueue(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition",
			fmt.Errorf("%d is not a valid 1-based rank", position))
	}

	newStatus, err := w.status.Enqueue()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.queuePosition = &position
	return nil
}

// Start begins (or resumes) work on the order at the location.
// Valid from NotStarted, InQueue, and Paused. The queue position is cleared and
// startedAt is recorded only on the first start, so resuming after a pause
// keeps the original timestamp. A start while already InProgress or Done fails
// with ErrInvalidTransition.
func (w *WorkLog) Start(now time.Time) error {
	newStatus, err := w.status.Start()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.queuePosition = nil
	if w.startedAt == nil {
		w.startedAt = &now
	}
	return nil
}

// Pause interrupts active work. Valid only from InProgress.
func (w *WorkLog) Pause() error {
	newStatus, err := w.status.Pause()
	if err != nil {
		return err
	}

	w.status = newStatus
	return nil
}

// Finish completes the work at the location with the given final quantity.
// Valid from InProgress and Paused. The quantity must lie within
// [0, totalQuantity], else ErrInvalidQuantity. Sets completedAt and the
// terminal Done status.
func (w *WorkLog) Finish(quantity int, totalQuantity int, now time.Time) error {
	if err := validateQuantity(quantity, totalQuantity); err != nil {
		return err
	}

	newStatus, err := w.status.Finish()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.completedQuantity = quantity
	w.completedAt = &now
	return nil
}

// UpdateQuantity corrects the completed quantity while work is InProgress or
// Paused. The same [0, totalQuantity] bounds apply and the status is unchanged.
// Downward corrections are allowed; this is the only path by which the
// completed quantity may decrease.
func (w *WorkLog) UpdateQuantity(quantity int, totalQuantity int) error {
	if !w.status.IsActive() {
		return fmt.Errorf("%w: cannot update quantity from %s", ErrInvalidTransition, w.status)
	}
	if err := validateQuantity(quantity, totalQuantity); err != nil {
		return err
	}

	w.completedQuantity = quantity
	return nil
}

// SetQueuePosition moves the record within its location queue. Valid only while
// InQueue; the queue planner uses this during dense re-packing.
func (w *WorkLog) SetQueuePosition(position int) error {
	if w.status != InQueue {
		return fmt.Errorf("%w: cannot reposition from %s", ErrInvalidTransition, w.status)
	}
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition",
			fmt.Errorf("%d is not a valid 1-based rank", position))
	}

	w.queuePosition = &position
	return nil
}

// LeaveQueue removes the record from its location queue without starting work,
// returning it to NotStarted.
func (w *WorkLog) LeaveQueue() error {
	if w.status != InQueue {
		return fmt.Errorf("%w: cannot leave queue from %s", ErrInvalidTransition, w.status)
	}

	w.status = NotStarted
	w.queuePosition = nil
	return nil
}

func validateQuantity(quantity int, totalQuantity int) error {
	if quantity < 0 || quantity > totalQuantity {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidQuantity, quantity, totalQuantity)
	}
	return nil
}

func (w *WorkLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkLog) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	w.orderID = orderID
	return nil
}

func (w *WorkLog) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	w.locationID = locationID
	return nil
}
