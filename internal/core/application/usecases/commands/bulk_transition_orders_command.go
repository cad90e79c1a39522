package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrBulkTransitionOrdersCommandIsNotConstructed = errors.New(
	"BulkTransitionOrdersCommand must be created via NewBulkTransitionOrdersCommand constructor",
)

// BulkTransitionOrdersCommand represents a request to move several orders
// to the same target status. Each order is validated independently: one
// order's failure does not abort the others.
type BulkTransitionOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	actor    string
	reason   string

	guard guard.ConstructorGuard
}

// NewBulkTransitionOrdersCommand creates a command to transition a batch of orders.
// Validates that at least one order ID is given and all IDs, the target
// status and the actor are valid.
func NewBulkTransitionOrdersCommand(
	orderIDs []kernel.UUID,
	target order.Status,
	actor string,
	reason string,
) (BulkTransitionOrdersCommand, error) {
	bulkCommand := BulkTransitionOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bulkCommand.setOrderIDs(orderIDs),
		bulkCommand.setTarget(target),
		bulkCommand.setActor(actor),
	); err != nil {
		return BulkTransitionOrdersCommand{}, err
	}

	bulkCommand.reason = reason
	return bulkCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkTransitionOrdersCommandIsNotConstructed if validation fails.
func (c BulkTransitionOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkTransitionOrdersCommandIsNotConstructed)
}

// OrderIDs returns the orders to transition.
func (c BulkTransitionOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Target returns the requested status.
func (c BulkTransitionOrdersCommand) Target() order.Status {
	return c.target
}

// Actor returns who requested the transitions.
func (c BulkTransitionOrdersCommand) Actor() string {
	return c.actor
}

// Reason returns the optional human-readable reason.
func (c BulkTransitionOrdersCommand) Reason() string {
	return c.reason
}

func (c *BulkTransitionOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *BulkTransitionOrdersCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *BulkTransitionOrdersCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
