package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is an immutable audit record of a single status transition.
// Events are append-only: once recorded they are never updated or deleted.
type Event struct {
	id         kernel.UUID
	orderID    kernel.UUID
	from       Status
	to         Status
	actor      string
	reason     string
	occurredAt time.Time

	isConstructed bool
}

// NewEvent creates an audit event for a transition that just happened.
// The from status may be Unknown for the creation event; the to status must
// be valid. OccurredAt is stamped with the current time.
func NewEvent(orderID kernel.UUID, from Status, to Status, actor string, reason string) (Event, error) {
	return RestoreEvent(kernel.NewUUID(), orderID, from, to, actor, reason, time.Now().UTC())
}

// RestoreEvent reconstructs an Event from persistence.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	from Status,
	to Status,
	actor string,
	reason string,
	occurredAt time.Time,
) (Event, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), to.Validate()); err != nil {
		return Event{}, err
	}

	if occurredAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return Event{
		id:            id,
		orderID:       orderID,
		from:          from,
		to:            to,
		actor:         actor,
		reason:        reason,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event was constructed through a constructor.
func (e Event) Validate() error {
	if !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order this event belongs to.
func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// From returns the status the order left. Unknown for the creation event.
func (e Event) From() Status {
	return e.from
}

// To returns the status the order entered.
func (e Event) To() Status {
	return e.to
}

// Actor returns who requested the transition.
func (e Event) Actor() string {
	return e.actor
}

// Reason returns the human-readable reason, empty when none was given.
func (e Event) Reason() string {
	return e.reason
}

// OccurredAt returns when the transition happened.
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}
