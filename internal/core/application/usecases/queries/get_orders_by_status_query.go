package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders currently in a given status,
// e.g. every order awaiting confirmation or out for delivery.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Ready)
//	if err != nil {
//	    return fmt.Errorf("invalid status filter: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtered by order status.
// Validates that the status is a defined status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	statusQuery := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusQuery.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetOrdersByStatusQueryResponse represents order information for status
// dashboards and bulk operations.
type GetOrdersByStatusQueryResponse struct {
	ID          kernel.UUID
	MerchantID  kernel.UUID
	Destination string
	Subtotal    float64
	DeliveryFee float64
	Status      string
}
