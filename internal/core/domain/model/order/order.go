package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the marketplace. It is the aggregate
// root that manages the order lifecycle from checkout completion through
// fulfillment, cancellation or refund.
//
// Order follows these invariants:
//   - Must have valid unique order and merchant identifiers
//   - Must have a valid destination postal code
//   - Subtotal must be positive; delivery fee must be non-negative
//   - Status mutates exclusively through validated transitions
//   - Every transition is recorded as an immutable audit Event
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// merchantID identifies the merchant fulfilling the order
	merchantID kernel.UUID

	// destination is the customer's delivery postal code
	destination kernel.PostalCode

	// subtotal is the order line-item total (excluding delivery fee)
	subtotal float64

	// deliveryFee is the quoted fee frozen at checkout completion
	deliveryFee float64

	// status represents the current state in the order lifecycle
	status Status

	// uncommittedEvents are audit records not yet persisted
	uncommittedEvents []Event

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status at checkout completion.
// A creation event (Unknown -> Pending) is recorded on the aggregate.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - merchantID: The fulfilling merchant (must be a valid UUID)
//   - destination: The customer's validated postal code
//   - subtotal: Line-item total, must be positive
//   - deliveryFee: Quoted delivery fee, must be non-negative
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	destination kernel.PostalCode,
	subtotal float64,
	deliveryFee float64,
) (*Order, error) {
	o, err := RestoreOrder(id, merchantID, destination, subtotal, deliveryFee, Pending)
	if err != nil {
		return nil, err
	}

	created, err := NewEvent(id, Unknown, Pending, "checkout", "")
	if err != nil {
		return nil, err
	}
	o.uncommittedEvents = append(o.uncommittedEvents, created)

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without recording an event.
func RestoreOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	destination kernel.PostalCode,
	subtotal float64,
	deliveryFee float64,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMerchantID(merchantID),
		o.setDestination(destination),
		o.setSubtotal(subtotal),
		o.setDeliveryFee(deliveryFee),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MerchantID returns the fulfilling merchant's identifier.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// Destination returns the customer's delivery postal code.
func (o *Order) Destination() kernel.PostalCode {
	return o.destination
}

// Subtotal returns the order line-item total.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// DeliveryFee returns the delivery fee frozen at checkout completion.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// UncommittedEvents returns audit events recorded on the aggregate that have
// not been persisted yet. Repositories persist and then clear them.
func (o *Order) UncommittedEvents() []Event {
	return o.uncommittedEvents
}

// ClearUncommittedEvents discards recorded events after persistence.
func (o *Order) ClearUncommittedEvents() {
	o.uncommittedEvents = nil
}

// TransitionTo moves the order to the target status.
//
// This method enforces the following business rules:
//   - The transition must be allowed by the status state machine
//   - Cancelled and Refunded require a non-empty reason
//
// On success the order's status changes and an audit Event is recorded on
// the aggregate for persistence alongside the status update.
//
// Parameters:
//   - target: The requested status
//   - actor: Who requested the transition (e.g. "merchant", "system")
//   - reason: Human-readable reason; required for Cancelled and Refunded
//
// Returns:
//   - nil on a successful transition
//   - *InvalidTransitionError naming both states if the move is not allowed
//   - ValueIsRequiredError if a required reason is missing
func (o *Order) TransitionTo(target Status, actor string, reason string) error {
	if target.RequiresReason() && reason == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"reason",
			fmt.Errorf("transition to %s requires a reason", target),
		)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	event, err := NewEvent(o.id, o.status, newStatus, actor, reason)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.uncommittedEvents = append(o.uncommittedEvents, event)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setMerchantID validates and sets the fulfilling merchant's identifier.
// This is a private method used only during construction.
func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

// setDestination validates and sets the delivery postal code.
// This is a private method used only during construction.
func (o *Order) setDestination(destination kernel.PostalCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// setSubtotal validates and sets the order subtotal.
// Subtotal must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setSubtotal(subtotal float64) error {
	if subtotal <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%.2f is not greater than 0", subtotal),
		)
	}
	o.subtotal = subtotal
	return nil
}

// setDeliveryFee validates and sets the delivery fee.
// This is a private method used only during construction.
func (o *Order) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee",
			fmt.Errorf("%.2f must not be negative", deliveryFee),
		)
	}
	o.deliveryFee = deliveryFee
	return nil
}

// setStatus validates and sets the order status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
