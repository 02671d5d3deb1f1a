// Package location provides the workshop station entity. A Location is a stop in
// the production sequence: orders queue up at it, get worked on, and move along.
//
// Key business rules:
//   - The identifier is immutable once assigned
//   - usedOrder defines the canonical processing sequence across stations
//   - Primary locations surface orders that still need initial processing
//   - Stations flagged skipAutoQueue never receive orders automatically
//   - countMultiplier scales completed-quantity accounting for display; noCount
//     disables quantity tracking at the station entirely
package location

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not created
// through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location represents a workshop station where production work happens.
// It uses private fields to keep its invariants intact; mutate it only through
// its methods.
type Location struct {
	id              kernel.UUID
	name            string
	usedOrder       int
	isPrimary       bool
	skipAutoQueue   bool
	countMultiplier float64
	noCount         bool

	isConstructed bool
}

// NewLocation creates a validated Location.
// The name must be non-empty and countMultiplier must be positive.
func NewLocation(id kernel.UUID, name string, usedOrder int, countMultiplier float64) (*Location, error) {
	loc := &Location{
		isConstructed:   true,
		countMultiplier: 1,
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setCountMultiplier(countMultiplier),
	); err != nil {
		return nil, err
	}

	loc.usedOrder = usedOrder
	return loc, nil
}

// RestoreLocation reconstructs a Location from persistence, including its flags.
func RestoreLocation(
	id kernel.UUID,
	name string,
	usedOrder int,
	isPrimary bool,
	skipAutoQueue bool,
	countMultiplier float64,
	noCount bool,
) (*Location, error) {
	loc, err := NewLocation(id, name, usedOrder, countMultiplier)
	if err != nil {
		return nil, err
	}

	loc.isPrimary = isPrimary
	loc.skipAutoQueue = skipAutoQueue
	loc.noCount = noCount
	return loc, nil
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// IsEqual compares two locations by identifier.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the station's immutable identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the station's display name.
func (l *Location) Name() string {
	return l.name
}

// UsedOrder returns the station's rank in the canonical processing sequence.
func (l *Location) UsedOrder() int {
	return l.usedOrder
}

// IsPrimary reports whether the station surfaces orders needing initial processing.
func (l *Location) IsPrimary() bool {
	return l.isPrimary
}

// SkipAutoQueue reports whether the station is excluded from enqueue-on-creation.
func (l *Location) SkipAutoQueue() bool {
	return l.skipAutoQueue
}

// CountMultiplier returns the factor applied to completed quantities for display.
func (l *Location) CountMultiplier() float64 {
	return l.countMultiplier
}

// NoCount reports whether quantity tracking is disabled at the station.
func (l *Location) NoCount() bool {
	return l.noCount
}

// Rename changes the station's display name.
func (l *Location) Rename(name string) error {
	return l.setName(name)
}

// SetUsedOrder changes the station's rank in the processing sequence.
func (l *Location) SetUsedOrder(usedOrder int) {
	l.usedOrder = usedOrder
}

// SetPrimary toggles the needs-processing visibility flag.
func (l *Location) SetPrimary(primary bool) {
	l.isPrimary = primary
}

// SetSkipAutoQueue toggles exclusion from automatic enqueueing.
func (l *Location) SetSkipAutoQueue(skip bool) {
	l.skipAutoQueue = skip
}

// SetNoCount toggles quantity tracking for the station.
func (l *Location) SetNoCount(noCount bool) {
	l.noCount = noCount
}

// SetCountMultiplier changes the quantity-accounting factor. Must stay positive.
func (l *Location) SetCountMultiplier(multiplier float64) error {
	return l.setCountMultiplier(multiplier)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setCountMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("countMultiplier",
			fmt.Errorf("%v is not greater than 0", multiplier))
	}
	l.countMultiplier = multiplier
	return nil
}
