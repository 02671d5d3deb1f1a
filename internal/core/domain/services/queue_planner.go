package services

import (
	"errors"
	"fmt"
	"sort"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/worklog"
)

// ErrQueuePositionOutOfRange is returned when a requested queue rank is not a
// valid 1-based position.
var ErrQueuePositionOutOfRange = errors.New("queue position out of range")

// QueuePlanner is a domain service that maintains the two queue orderings of
// the workshop: the per-location processing queues and the cross-location
// global queue. Both are dense 1-based integer sequences with no gaps, re-packed
// after every mutation.
//
// The planner mutates the aggregates it is given; persisting the whole batch is
// the calling unit of work's responsibility, which is what makes a re-pack
// atomic from the outside.
//
// Business rules:
//   - Queue positions form a dense 1..N sequence at all times
//   - Relative order is preserved across re-packs
//   - A requested global rank is clamped to [1, N+1]; ranks below 1 are rejected
//   - Per-location and global ranks are independent and never conflated
type QueuePlanner struct{}

// NewQueuePlanner creates a new QueuePlanner instance.
func NewQueuePlanner() QueuePlanner {
	return QueuePlanner{}
}

// NextPosition returns the rank a newly queued record takes at a location:
// one past the current queue tail, 1 for an empty queue.
func (QueuePlanner) NextPosition(queued []*worklog.WorkLog) int {
	maxPos := 0
	for _, wl := range queued {
		if pos := wl.QueuePosition(); pos != nil && *pos > maxPos {
			maxPos = *pos
		}
	}
	return maxPos + 1
}

// Repack reassigns dense 1..N ranks to a location's queued records, preserving
// their relative order. Call it after any removal from the queue.
func (QueuePlanner) Repack(queued []*worklog.WorkLog) error {
	for _, wl := range queued {
		if err := wl.Validate(); err != nil {
			return err
		}
		if wl.Status() != worklog.InQueue || wl.QueuePosition() == nil {
			return fmt.Errorf("%w: record %s is not queued", ErrQueuePositionOutOfRange, wl.ID())
		}
	}

	sorted := make([]*worklog.WorkLog, len(queued))
	copy(sorted, queued)
	sort.SliceStable(sorted, func(i, j int) bool {
		return *sorted[i].QueuePosition() < *sorted[j].QueuePosition()
	})

	for i, wl := range sorted {
		if err := wl.SetQueuePosition(i + 1); err != nil {
			return err
		}
	}
	return nil
}

// PlanGlobalInsert places the target order at the requested 1-based rank in the
// global queue and renumbers every ranked order densely. Orders at or after the
// requested rank shift down by one. The rank is clamped to [1, N+1] where N is
// the number of ranked orders excluding the target; ranks below 1 fail with
// ErrQueuePositionOutOfRange.
//
// The queued slice must hold every currently ranked order; it may or may not
// already include the target.
func (p QueuePlanner) PlanGlobalInsert(queued []*order.Order, target *order.Order, position int) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if position < 1 {
		return fmt.Errorf("%w: %d is below 1", ErrQueuePositionOutOfRange, position)
	}

	ranked := make([]*order.Order, 0, len(queued)+1)
	for _, ord := range queued {
		if err := ord.Validate(); err != nil {
			return err
		}
		if ord.IsEqual(target) || ord.GlobalQueuePosition() == nil {
			continue
		}
		ranked = append(ranked, ord)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].GlobalQueuePosition() < *ranked[j].GlobalQueuePosition()
	})

	if position > len(ranked)+1 {
		position = len(ranked) + 1
	}

	ranked = append(ranked, nil)
	copy(ranked[position:], ranked[position-1:])
	ranked[position-1] = target

	for i, ord := range ranked {
		if err := ord.PlaceInGlobalQueue(i + 1); err != nil {
			return err
		}
	}
	return nil
}

// PlanGlobalRemove takes the target order out of the global queue and renumbers
// the remaining ranked orders densely, preserving their relative order.
func (p QueuePlanner) PlanGlobalRemove(queued []*order.Order, target *order.Order) error {
	if err := target.Validate(); err != nil {
		return err
	}

	ranked := make([]*order.Order, 0, len(queued))
	for _, ord := range queued {
		if err := ord.Validate(); err != nil {
			return err
		}
		if ord.IsEqual(target) || ord.GlobalQueuePosition() == nil {
			continue
		}
		ranked = append(ranked, ord)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].GlobalQueuePosition() < *ranked[j].GlobalQueuePosition()
	})

	target.LeaveGlobalQueue()

	for i, ord := range ranked {
		if err := ord.PlaceInGlobalQueue(i + 1); err != nil {
			return err
		}
	}
	return nil
}
