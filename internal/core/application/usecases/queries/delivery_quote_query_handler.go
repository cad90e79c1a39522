package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/core/domain/services"
)

// MerchantReader provides read-only access to merchant aggregates for quote
// computation.
type MerchantReader interface {
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)
}

// DeliveryQuoteQueryHandler computes delivery quotes. The computation itself
// is a pure function of the merchant configuration and the destination, so
// the handler is safe under arbitrary concurrent invocation.
type DeliveryQuoteQueryHandler struct {
	merchants  MerchantReader
	calculator services.QuoteCalculator
}

// NewDeliveryQuoteQueryHandler creates a handler for delivery quote queries.
// Requires read access to merchants and the quote calculator.
func NewDeliveryQuoteQueryHandler(
	merchants MerchantReader,
	calculator services.QuoteCalculator,
) DeliveryQuoteQueryHandler {
	return DeliveryQuoteQueryHandler{
		merchants:  merchants,
		calculator: calculator,
	}
}

// Handle executes the query and returns the computed quote.
//
// Returns:
//   - services.ErrDeliveryDisabled or *services.OutOfRangeError when the
//     merchant cannot serve the destination
//   - errs.ObjectNotFoundError when the merchant does not exist
func (h DeliveryQuoteQueryHandler) Handle(ctx context.Context, query DeliveryQuoteQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	aggregate, err := h.merchants.Get(ctx, query.MerchantID())
	if err != nil {
		return services.Quote{}, err
	}

	return h.calculator.Calculate(aggregate, query.Destination(), query.OrderTotal())
}
