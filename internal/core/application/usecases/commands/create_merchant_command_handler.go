package commands

import (
	"context"

	"marketplace/internal/core/domain/model/merchant"
)

// CreateMerchantCommandHandler handles the business logic for merchant
// registration. Creates the aggregate with its delivery configuration and
// persists it transactionally.
type CreateMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
}

// NewCreateMerchantCommandHandler creates a handler for merchant registration.
// Requires a MerchantUoWFactory for transactional persistence.
func NewCreateMerchantCommandHandler(uowFactory MerchantUoWFactory) CreateMerchantCommandHandler {
	return CreateMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merchant registration command.
// Uses transaction to ensure the merchant is properly persisted or rolled back on error.
func (h *CreateMerchantCommandHandler) Handle(ctx context.Context, cmd CreateMerchantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := merchant.NewMerchant(cmd.MerchantID(), cmd.Name(), cmd.PostalCode(), cmd.Profile())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MerchantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
