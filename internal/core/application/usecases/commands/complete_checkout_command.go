package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteCheckoutCommandIsNotConstructed = errors.New(
	"CompleteCheckoutCommand must be created via NewCompleteCheckoutCommand constructor",
)

// CompleteCheckoutCommand represents a request to turn a live checkout
// session into an order. The session's quote is frozen into the order's
// delivery fee.
type CompleteCheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteCheckoutCommand creates a command to complete a checkout session.
// Validates that both identifiers are valid UUIDs.
func NewCompleteCheckoutCommand(orderID kernel.UUID, sessionID kernel.UUID) (CompleteCheckoutCommand, error) {
	checkoutCommand := CompleteCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOrderID(orderID),
		checkoutCommand.setSessionID(sessionID),
	); err != nil {
		return CompleteCheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteCheckoutCommandIsNotConstructed if validation fails.
func (c CompleteCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCheckoutCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order to create.
func (c CompleteCheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SessionID returns the checkout session to complete.
func (c CompleteCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CompleteCheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
