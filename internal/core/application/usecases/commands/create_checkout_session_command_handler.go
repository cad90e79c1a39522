package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CreateCheckoutSessionCommandHandler opens a checkout session: it computes
// a fresh delivery quote for the cart and stores the snapshot in the
// expiring session store.
//
// A rejected quote (delivery disabled, destination out of range) or an
// unmet minimum order fails the command; checkout must not proceed past a
// rejected quote.
type CreateCheckoutSessionCommandHandler struct {
	uowFactory MerchantUoWFactory
	calculator services.QuoteCalculator
	sessions   ports.SessionStore
}

// NewCreateCheckoutSessionCommandHandler creates a handler for opening
// checkout sessions.
func NewCreateCheckoutSessionCommandHandler(
	uowFactory MerchantUoWFactory,
	calculator services.QuoteCalculator,
	sessions ports.SessionStore,
) CreateCheckoutSessionCommandHandler {
	return CreateCheckoutSessionCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		sessions:   sessions,
	}
}

// Handle processes the command: loads the merchant, checks the minimum
// order, computes the quote and stores the session.
func (h *CreateCheckoutSessionCommandHandler) Handle(ctx context.Context, cmd CreateCheckoutSessionCommand) (ports.CheckoutSession, error) {
	if err := cmd.Validate(); err != nil {
		return ports.CheckoutSession{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.CheckoutSession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.MerchantRepository().Get(ctx, cmd.MerchantID())
	if err != nil {
		return ports.CheckoutSession{}, err
	}

	subtotal := cmd.Subtotal()
	if err = aggregate.CheckMinimumOrder(subtotal); err != nil {
		return ports.CheckoutSession{}, err
	}

	quote, err := h.calculator.Calculate(aggregate, cmd.Destination(), subtotal)
	if err != nil {
		return ports.CheckoutSession{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.CheckoutSession{}, err
	}

	session := ports.CheckoutSession{
		ID:          cmd.SessionID(),
		MerchantID:  cmd.MerchantID(),
		Destination: cmd.Destination(),
		Items:       cmd.Items(),
		Subtotal:    subtotal,
		Quote:       quote,
		CreatedAt:   time.Now().UTC(),
	}

	if err = h.sessions.Set(ctx, session); err != nil {
		return ports.CheckoutSession{}, err
	}

	return session, nil
}
