package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateCheckoutSessionCommandIsNotConstructed = errors.New(
	"CreateCheckoutSessionCommand must be created via NewCreateCheckoutSessionCommand constructor",
)

// CreateCheckoutSessionCommand represents a request to open a checkout
// session: a time-boxed snapshot of the cart and a delivery quote computed
// for it. Completing the session later turns it into an order.
type CreateCheckoutSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	merchantID  kernel.UUID
	destination kernel.PostalCode
	items       []ports.CheckoutItem

	guard guard.ConstructorGuard
}

// NewCreateCheckoutSessionCommand creates a command to open a checkout session.
// Validates identifiers, the destination postal code and the cart items:
// the cart must not be empty, quantities must be positive and unit prices
// must not be negative.
func NewCreateCheckoutSessionCommand(
	sessionID kernel.UUID,
	merchantID kernel.UUID,
	destination kernel.PostalCode,
	items []ports.CheckoutItem,
) (CreateCheckoutSessionCommand, error) {
	sessionCommand := CreateCheckoutSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionCommand.setSessionID(sessionID),
		sessionCommand.setMerchantID(merchantID),
		sessionCommand.setDestination(destination),
		sessionCommand.setItems(items),
	); err != nil {
		return CreateCheckoutSessionCommand{}, err
	}

	return sessionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCheckoutSessionCommandIsNotConstructed if validation fails.
func (c CreateCheckoutSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateCheckoutSessionCommandIsNotConstructed)
}

// SessionID returns the unique identifier for the checkout session.
func (c CreateCheckoutSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// MerchantID returns the merchant the cart belongs to.
func (c CreateCheckoutSessionCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Destination returns the customer's delivery postal code.
func (c CreateCheckoutSessionCommand) Destination() kernel.PostalCode {
	return c.destination
}

// Items returns the cart line items.
func (c CreateCheckoutSessionCommand) Items() []ports.CheckoutItem {
	return c.items
}

// Subtotal returns the cart total computed from the line items.
func (c CreateCheckoutSessionCommand) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	return subtotal
}

func (c *CreateCheckoutSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *CreateCheckoutSessionCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateCheckoutSessionCommand) setDestination(destination kernel.PostalCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateCheckoutSessionCommand) setItems(items []ports.CheckoutItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d quantity must be greater than 0", i),
			)
		}
		if item.UnitPrice < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %d unit price must not be negative", i),
			)
		}
	}

	c.items = items
	return nil
}
