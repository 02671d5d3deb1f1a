package services

import (
	"math"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
)

// Readiness classifies how close an order is to being shippable.
type Readiness int

const (
	// NotReady means at least one location has not produced shippable work yet,
	// or the order has no workflow records at all.
	NotReady Readiness = iota

	// PartReady means every location is done or actively producing with some
	// quantity completed, and at least one location finished.
	PartReady

	// FullyReady means every location finished its work.
	FullyReady
)

func (r Readiness) String() string {
	switch r {
	case PartReady:
		return "part_ready"
	case FullyReady:
		return "fully_ready"
	default:
		return "not_ready"
	}
}

// ReadinessCalculator is a domain service deriving shipping readiness and
// completion progress from an order's workflow records. It holds no state and
// never mutates its inputs.
type ReadinessCalculator struct{}

// NewReadinessCalculator creates a new ReadinessCalculator instance.
func NewReadinessCalculator() ReadinessCalculator {
	return ReadinessCalculator{}
}

// Completion derives the order's completion percentage: the sum of completed
// quantities across its workflow records divided by (total quantity x record
// count), rounded to an integer and clamped to [0, 100]. An order with no
// records is 0% complete by definition.
func (ReadinessCalculator) Completion(totalQuantity int, entries []*worklog.WorkLog) int {
	if totalQuantity <= 0 || len(entries) == 0 {
		return 0
	}

	sum := 0
	for _, wl := range entries {
		sum += wl.CompletedQuantity()
	}

	pct := int(math.Round(float64(sum) * 100 / float64(totalQuantity*len(entries))))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// Readiness classifies the order's ship-eligibility:
//   - NotReady: already shipped, no workflow records, any record neither done
//     nor in progress with quantity, or nothing finished yet
//   - PartReady: every record done or (in progress with quantity > 0), at
//     least one done, but not all
//   - FullyReady: every record done
func (ReadinessCalculator) Readiness(ord *order.Order, entries []*worklog.WorkLog) Readiness {
	if ord.IsShipped() || len(entries) == 0 {
		return NotReady
	}

	doneCount := 0
	for _, wl := range entries {
		switch {
		case wl.Status() == worklog.Done:
			doneCount++
		case wl.Status() == worklog.InProgress && wl.CompletedQuantity() > 0:
			// producing, counts toward partial readiness
		default:
			return NotReady
		}
	}

	if doneCount == 0 {
		return NotReady
	}
	if doneCount == len(entries) {
		return FullyReady
	}
	return PartReady
}

// NeedsPrimaryProcessing reports whether an order still needs work at a primary
// location: true while it has no workflow record there or that record has not
// progressed past the queue. This feeds the "needed orders" view only; it is an
// advisory filter, not an enforced precedence lock on other locations.
func (ReadinessCalculator) NeedsPrimaryProcessing(entry *worklog.WorkLog) bool {
	if entry == nil {
		return true
	}
	return entry.Status() == worklog.NotStarted || entry.Status() == worklog.InQueue
}
