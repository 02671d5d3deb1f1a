package order

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrQuantityExceedsTotal is returned when a shipment would push the shipped
	// quantity past the order's total quantity.
	ErrQuantityExceedsTotal = errors.New("shipped quantity exceeds total quantity")
)

// Order represents a production job moving through the workshop. It is the
// aggregate root for shipping state, the rush flag, and the global queue rank.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and non-empty order number and client
//   - Total quantity is positive and never drops below the shipped quantity
//   - Shipped quantity is monotonically non-decreasing and bounded by the total
//   - isShipped and partiallyShipped are derived from the shipped quantity
//   - The global queue position, when set, is a 1-based rank
type Order struct {
	id                  kernel.UUID
	orderNumber         string
	referenceNumber     string
	client              string
	dueDate             time.Time
	totalQuantity       int
	shippedQuantity     int
	isShipped           bool
	partiallyShipped    bool
	rush                bool
	rushSetAt           *time.Time
	globalQueuePosition *int

	isConstructed bool
}

// NewOrder creates a new Order with validation. The order number and client must
// be non-empty and the total quantity positive.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	referenceNumber string,
	client string,
	dueDate time.Time,
	totalQuantity int,
) (*Order, error) {
	ord := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		ord.setID(id),
		ord.setOrderNumber(orderNumber),
		ord.setClient(client),
		ord.setTotalQuantity(totalQuantity),
	); err != nil {
		return nil, err
	}

	ord.referenceNumber = referenceNumber
	ord.dueDate = dueDate
	return ord, nil
}

// RestoreOrder reconstructs an Order from persistence, including derived state
// that must not be recomputed.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	referenceNumber string,
	client string,
	dueDate time.Time,
	totalQuantity int,
	shippedQuantity int,
	isShipped bool,
	partiallyShipped bool,
	rush bool,
	rushSetAt *time.Time,
	globalQueuePosition *int,
) (*Order, error) {
	ord, err := NewOrder(id, orderNumber, referenceNumber, client, dueDate, totalQuantity)
	if err != nil {
		return nil, err
	}

	if shippedQuantity < 0 || shippedQuantity > totalQuantity {
		return nil, errs.NewValueIsOutOfRangeError("shippedQuantity", shippedQuantity, 0, totalQuantity)
	}

	ord.shippedQuantity = shippedQuantity
	ord.isShipped = isShipped
	ord.partiallyShipped = partiallyShipped
	ord.rush = rush
	ord.rushSetAt = rushSetAt
	ord.globalQueuePosition = globalQueuePosition
	return ord, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the workshop-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// ReferenceNumber returns the external (client) reference number.
func (o *Order) ReferenceNumber() string {
	return o.referenceNumber
}

// Client returns the client the order is produced for.
func (o *Order) Client() string {
	return o.client
}

// DueDate returns when the order is due.
func (o *Order) DueDate() time.Time {
	return o.dueDate
}

// TotalQuantity returns the quantity ordered.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// ShippedQuantity returns the quantity shipped so far.
func (o *Order) ShippedQuantity() int {
	return o.shippedQuantity
}

// IsShipped reports whether the full quantity left the workshop.
func (o *Order) IsShipped() bool {
	return o.isShipped
}

// PartiallyShipped reports whether some, but not all, of the quantity shipped.
func (o *Order) PartiallyShipped() bool {
	return o.partiallyShipped
}

// Rush reports whether the order is flagged for display-time prioritization.
func (o *Order) Rush() bool {
	return o.rush
}

// RushSetAt returns when the rush flag was first set, or nil if never flagged.
func (o *Order) RushSetAt() *time.Time {
	return o.rushSetAt
}

// GlobalQueuePosition returns the order's 1-based rank in the global queue,
// or nil when the order is not globally queued.
func (o *Order) GlobalQueuePosition() *int {
	return o.globalQueuePosition
}

// Ship records a shipment of the given quantity.
// Fails with ErrQuantityExceedsTotal when the shipment would overshoot the total
// quantity, and derives the isShipped/partiallyShipped flags from the new state.
func (o *Order) Ship(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if o.shippedQuantity+quantity > o.totalQuantity {
		return fmt.Errorf("%w: %d shipped + %d requested > %d total",
			ErrQuantityExceedsTotal, o.shippedQuantity, quantity, o.totalQuantity)
	}

	o.shippedQuantity += quantity
	if o.shippedQuantity == o.totalQuantity {
		o.isShipped = true
		o.partiallyShipped = false
	} else {
		o.partiallyShipped = true
	}

	return nil
}

// ChangeDetails updates the editable order attributes. The total quantity must
// stay positive and cannot drop below what already shipped.
func (o *Order) ChangeDetails(client string, dueDate time.Time, totalQuantity int) error {
	if client == "" {
		return errs.NewValueIsRequiredError("client")
	}
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalQuantity",
			fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	if totalQuantity < o.shippedQuantity {
		return errs.NewValueIsOutOfRangeError("totalQuantity", totalQuantity, o.shippedQuantity, totalQuantity)
	}

	o.client = client
	o.dueDate = dueDate
	o.totalQuantity = totalQuantity
	o.isShipped = o.shippedQuantity == o.totalQuantity
	o.partiallyShipped = o.shippedQuantity > 0 && !o.isShipped
	return nil
}

// SetRush flags the order for display-time prioritization. The timestamp is
// recorded only on the first flagging so re-flagging keeps the original urgency.
func (o *Order) SetRush(now time.Time) {
	o.rush = true
	if o.rushSetAt == nil {
		o.rushSetAt = &now
	}
}

// ClearRush removes the rush flag and its timestamp.
func (o *Order) ClearRush() {
	o.rush = false
	o.rushSetAt = nil
}

// PlaceInGlobalQueue assigns the order's 1-based global queue rank.
// Only the queue planner should call this; direct rank writes break the dense
// numbering invariant.
func (o *Order) PlaceInGlobalQueue(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("globalQueuePosition",
			fmt.Errorf("%d is not a valid 1-based rank", position))
	}
	o.globalQueuePosition = &position
	return nil
}

// LeaveGlobalQueue removes the order from the global queue.
func (o *Order) LeaveGlobalQueue() {
	o.globalQueuePosition = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setClient(client string) error {
	if client == "" {
		return errs.NewValueIsRequiredError("client")
	}
	o.client = client
	return nil
}

func (o *Order) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalQuantity",
			fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	o.totalQuantity = totalQuantity
	return nil
}
