package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// ErrConcurrentTransition is returned by UpdateStatus when the conditional
// write matched no rows: another request changed the order's status after
// this request read it. The caller should re-read and retry or surface a
// conflict.
var ErrConcurrentTransition = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders, and for
// the conditional status update the state machine relies on.
type OrderRepository interface {
	// Add persists a new order aggregate and its recorded events to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the aggregate's current status conditioned on
	// the status previously read from storage (optimistic concurrency).
	// The aggregate's recorded events are appended in the same transaction.
	// Returns ErrConcurrentTransition when the condition matched no rows.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
