package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves the audit trail of an order: every status
// transition recorded against it, oldest first.
type GetOrderEventsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery creates a query for an order's audit trail.
// Validates that the order ID is a valid UUID.
func NewGetOrderEventsQuery(orderID kernel.UUID) (GetOrderEventsQuery, error) {
	eventsQuery := GetOrderEventsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := eventsQuery.setOrderID(orderID); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return eventsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderEventsQueryIsNotConstructed if validation fails.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the order whose audit trail is requested.
func (q GetOrderEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderEventsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderEventsQueryResponse represents one recorded status transition.
type GetOrderEventsQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	From       string
	To         string
	Actor      string
	Reason     string
	OccurredAt time.Time
}
