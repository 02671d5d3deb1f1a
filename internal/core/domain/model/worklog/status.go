package worklog

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a workflow operation is attempted from a
// status that does not permit it.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the workflow state of an order at one workshop location.
// It implements a state machine with defined transitions:
//
//	NotStarted ──> InQueue ──> InProgress <──> Paused
//	     │                         │             │
//	     └───────> (start) ────────┤             │
//	                               v             v
//	                             Done <──────────┘
//
// Done is terminal; no further transition is valid once reached.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotStarted means the order has a record at the location but no work or
	// queueing happened yet.
	NotStarted

	// InQueue means the order waits in the location's processing queue.
	// A queue position exists exactly while in this status.
	InQueue

	// InProgress means the location is actively working the order.
	InProgress

	// Paused means work was interrupted and may be resumed.
	Paused

	// Done means the location finished its work. Terminal.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		NotStarted: "not_started",
		InQueue:    "in_queue",
		InProgress: "in_progress",
		Paused:     "paused",
		Done:       "done",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "not_started",
		InQueue:    "in_queue",
		InProgress: "in_progress",
		Paused:     "paused",
		Done:       "done",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status as stored and displayed.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Enqueue transitions the status to InQueue.
//
// Valid transitions:
//   - NotStarted -> InQueue
//
// Any other starting status fails with ErrInvalidTransition: queued and active
// work must leave its current state through Start/Pause/Finish first.
func (s Status) Enqueue() (Status, error) {
	if s != NotStarted {
		return 0, fmt.Errorf("%w: cannot enqueue from %s", ErrInvalidTransition, s)
	}
	return InQueue, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - NotStarted -> InProgress (work begins directly)
//   - InQueue -> InProgress (work begins from the queue)
//   - Paused -> InProgress (work resumes)
//
// Starting from InProgress or Done fails with ErrInvalidTransition, which is
// how a second concurrent start is rejected.
func (s Status) Start() (Status, error) {
	if s != NotStarted && s != InQueue && s != Paused {
		return 0, fmt.Errorf("%w: cannot start from %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Pause transitions the status to Paused.
//
// Valid transitions:
//   - InProgress -> Paused
func (s Status) Pause() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot pause from %s", ErrInvalidTransition, s)
	}
	return Paused, nil
}

// Finish transitions the status to Done.
//
// Valid transitions:
//   - InProgress -> Done
//   - Paused -> Done
//
// Done is terminal, so finishing twice fails with ErrInvalidTransition.
func (s Status) Finish() (Status, error) {
	if s != InProgress && s != Paused {
		return 0, fmt.Errorf("%w: cannot finish from %s", ErrInvalidTransition, s)
	}
	return Done, nil
}

// IsActive reports whether quantity updates are permitted in this status.
func (s Status) IsActive() bool {
	return s == InProgress || s == Paused
}
