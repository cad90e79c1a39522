// Package ports defines the contracts between the application core and
// infrastructure adapters. These interfaces establish dependency inversion
// boundaries for persistence, notification and session storage.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
)

// MerchantRepository defines the persistence contract for merchant aggregates.
// Provides methods for storing, retrieving, and updating merchants with their
// complete delivery configuration.
type MerchantRepository interface {
	// Add persists a new merchant aggregate to storage.
	// The merchant must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *merchant.Merchant) error

	// Update persists changes to an existing merchant aggregate.
	// The merchant must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *merchant.Merchant) error

	// Get retrieves a merchant aggregate by its unique identifier.
	// Returns the complete merchant with its delivery settings.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)
}
