package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CompleteCheckoutCommandHandler turns a live checkout session into an order
// in Pending status. The session's quoted fee is frozen into the order;
// expired sessions are rejected, never revived.
type CompleteCheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	notifier   ports.Notifier
}

// NewCompleteCheckoutCommandHandler creates a handler for checkout completion.
// Requires an OrderUoWFactory for transactional persistence, the session
// store holding live checkout sessions and a Notifier for post-commit
// dispatch.
func NewCompleteCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	notifier ports.Notifier,
) CompleteCheckoutCommandHandler {
	return CompleteCheckoutCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		notifier:   notifier,
	}
}

// Handle processes the checkout completion command.
// Loads the session, creates the order with the session's quote and persists
// it transactionally. The session is deleted after a successful commit; a
// failed delete is absorbed since the expiry sweep removes it anyway. The
// customer is notified of the created order after the commit, best-effort.
func (h *CompleteCheckoutCommandHandler) Handle(ctx context.Context, cmd CompleteCheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		session.MerchantID,
		session.Destination,
		session.Subtotal,
		session.Quote.Fee,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.sessions.Delete(ctx, cmd.SessionID())

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: ports.CustomerRecipient,
		OrderID:   aggregate.ID(),
		From:      order.Unknown,
		To:        aggregate.Status(),
	})

	return aggregate, nil
}
