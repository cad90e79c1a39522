// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from storage or delegate to domain services;
// they never modify system state.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeliveryQuoteQueryIsNotConstructed = errors.New(
	"DeliveryQuoteQuery must be created via NewDeliveryQuoteQuery constructor",
)

// DeliveryQuoteQuery requests a delivery quote for a merchant, a destination
// postal code and an order subtotal. Quotes are computed fresh per request
// and never persisted or cached.
//
// Example:
//
//	postalCode, _ := kernel.NewPostalCode("018956")
//	query, err := NewDeliveryQuoteQuery(merchantID, postalCode, 42.50)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	handler := NewDeliveryQuoteQueryHandler(merchantReader, calculator)
//	quote, err := handler.Handle(ctx, query)
type DeliveryQuoteQuery struct { //nolint:recvcheck //using for validation
	merchantID  kernel.UUID
	destination kernel.PostalCode
	orderTotal  float64

	guard guard.ConstructorGuard
}

// NewDeliveryQuoteQuery creates a query for a delivery quote.
// Validates the merchant ID and the destination postal code; the order
// total is optional and defaults to zero.
func NewDeliveryQuoteQuery(
	merchantID kernel.UUID,
	destination kernel.PostalCode,
	orderTotal float64,
) (DeliveryQuoteQuery, error) {
	quoteQuery := DeliveryQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quoteQuery.setMerchantID(merchantID),
		quoteQuery.setDestination(destination),
	); err != nil {
		return DeliveryQuoteQuery{}, err
	}

	quoteQuery.orderTotal = orderTotal
	return quoteQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrDeliveryQuoteQueryIsNotConstructed if validation fails.
func (q DeliveryQuoteQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryQuoteQueryIsNotConstructed)
}

// MerchantID returns the merchant to quote for.
func (q DeliveryQuoteQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// Destination returns the customer's postal code.
func (q DeliveryQuoteQuery) Destination() kernel.PostalCode {
	return q.destination
}

// OrderTotal returns the order subtotal used for free-delivery resolution.
func (q DeliveryQuoteQuery) OrderTotal() float64 {
	return q.orderTotal
}

func (q *DeliveryQuoteQuery) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	q.merchantID = merchantID
	return nil
}

func (q *DeliveryQuoteQuery) setDestination(destination kernel.PostalCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	q.destination = destination
	return nil
}
