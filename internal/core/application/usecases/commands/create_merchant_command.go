package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateMerchantCommandIsNotConstructed = errors.New(
	"CreateMerchantCommand must be created via NewCreateMerchantCommand constructor",
)

// CreateMerchantCommand represents a request to register a new merchant
// together with its delivery configuration.
//
// Example:
//
//	merchantID := kernel.NewUUID()
//	postalCode, _ := kernel.NewPostalCode("238874")
//	cmd, err := NewCreateMerchantCommand(merchantID, "Tiong Bahru Bakery", postalCode, profile)
//	if err != nil {
//	    return fmt.Errorf("invalid merchant data: %w", err)
//	}
//
//	handler := NewCreateMerchantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create merchant: %w", err)
//	}
type CreateMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	name       string
	postalCode kernel.PostalCode
	profile    merchant.DeliveryProfile

	guard guard.ConstructorGuard
}

// NewCreateMerchantCommand creates a command to register a new merchant.
// Validates that the merchant ID, name and postal code are valid; the
// delivery profile itself is validated by the aggregate constructor.
func NewCreateMerchantCommand(
	merchantID kernel.UUID,
	name string,
	postalCode kernel.PostalCode,
	profile merchant.DeliveryProfile,
) (CreateMerchantCommand, error) {
	merchantCommand := CreateMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		merchantCommand.setMerchantID(merchantID),
		merchantCommand.setName(name),
		merchantCommand.setPostalCode(postalCode),
	); err != nil {
		return CreateMerchantCommand{}, err
	}

	merchantCommand.profile = profile
	return merchantCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMerchantCommandIsNotConstructed if validation fails.
func (c CreateMerchantCommand) Validate() error {
	return c.guard.Validate(ErrCreateMerchantCommandIsNotConstructed)
}

// MerchantID returns the unique identifier for the merchant.
func (c CreateMerchantCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Name returns the merchant's display name.
func (c CreateMerchantCommand) Name() string {
	return c.name
}

// PostalCode returns the merchant's postal code.
func (c CreateMerchantCommand) PostalCode() kernel.PostalCode {
	return c.postalCode
}

// Profile returns the merchant's delivery configuration.
func (c CreateMerchantCommand) Profile() merchant.DeliveryProfile {
	return c.profile
}

func (c *CreateMerchantCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateMerchantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateMerchantCommand) setPostalCode(postalCode kernel.PostalCode) error {
	if err := postalCode.Validate(); err != nil {
		return err
	}

	c.postalCode = postalCode
	return nil
}
