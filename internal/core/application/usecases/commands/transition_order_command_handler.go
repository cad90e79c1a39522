package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// TransitionOrderCommandHandler handles the business logic for order status
// transitions.
//
// The committed state change is the source of truth: the status update is
// conditioned on the status read within the same transaction, so two
// concurrent transitions on one order cannot both succeed from a stale
// read. Notifications are dispatched after the commit and are best-effort;
// a failed send never rolls back the transition.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for post-commit dispatch.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transition command and returns the updated order.
//
// Returns:
//   - *order.InvalidTransitionError when the state machine rejects the move
//   - ports.ErrConcurrentTransition when another request won the write race
//   - errs.ObjectNotFoundError when the order does not exist
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Reason()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notify(ctx, aggregate, previousStatus, cmd.Reason())

	return aggregate, nil
}

// notify dispatches post-commit notifications for the transition. Entering
// Cancelled informs both parties; all other states inform the customer.
func (h *TransitionOrderCommandHandler) notify(ctx context.Context, aggregate *order.Order, from order.Status, reason string) {
	notification := ports.Notification{
		Recipient: ports.CustomerRecipient,
		OrderID:   aggregate.ID(),
		From:      from,
		To:        aggregate.Status(),
		Reason:    reason,
	}
	h.notifier.Notify(ctx, notification)

	if aggregate.Status() == order.Cancelled {
		notification.Recipient = ports.MerchantRecipient
		h.notifier.Notify(ctx, notification)
	}
}
