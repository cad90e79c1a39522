package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// BulkTransitionResult is the per-order success/failure tally of a bulk
// transition.
type BulkTransitionResult struct {
	SuccessCount int
	FailedCount  int
	TotalCount   int
}

// BulkTransitionOrdersCommandHandler applies the same transition to a batch
// of orders. Each order runs in its own transaction, so the orders are
// isolated from one another: a failed transition on one order never aborts
// or rolls back the rest.
type BulkTransitionOrdersCommandHandler struct {
	transitionHandler TransitionOrderCommandHandler
}

// NewBulkTransitionOrdersCommandHandler creates a handler for bulk
// transitions. It delegates each order to the single-order handler.
func NewBulkTransitionOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) BulkTransitionOrdersCommandHandler {
	return BulkTransitionOrdersCommandHandler{
		transitionHandler: NewTransitionOrderCommandHandler(uowFactory, notifier),
	}
}

// Handle processes the bulk command and returns the tally. Only the batch
// itself can fail (invalid command); per-order failures are counted.
func (h *BulkTransitionOrdersCommandHandler) Handle(ctx context.Context, cmd BulkTransitionOrdersCommand) (BulkTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkTransitionResult{}, err
	}

	result := BulkTransitionResult{
		TotalCount: len(cmd.OrderIDs()),
	}

	for _, orderID := range cmd.OrderIDs() {
		transitionCommand, err := NewTransitionOrderCommand(orderID, cmd.Target(), cmd.Actor(), cmd.Reason())
		if err != nil {
			result.FailedCount++
			continue
		}

		if _, err = h.transitionHandler.Handle(ctx, transitionCommand); err != nil {
			result.FailedCount++
			continue
		}

		result.SuccessCount++
	}

	return result, nil
}
