package ports

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
)

// ErrSessionNotFound is returned when no session exists for the given id.
var ErrSessionNotFound = errors.New("checkout session not found")

// ErrSessionExpired is returned when a session exists but its TTL has
// elapsed. Expired sessions are rejected, never silently revived.
var ErrSessionExpired = errors.New("checkout session expired")

// CheckoutItem is a single line item held in a checkout session.
type CheckoutItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// CheckoutSession is the temporary state of a checkout flow: the merchant,
// the cart and the quote snapshot computed for it. Sessions are time-boxed;
// an expired session must be rejected rather than revived.
type CheckoutSession struct {
	ID          kernel.UUID
	MerchantID  kernel.UUID
	Destination kernel.PostalCode
	Items       []CheckoutItem
	Subtotal    float64
	Quote       services.Quote
	CreatedAt   time.Time
}

// SessionStore is an expiring key-value store for checkout sessions.
// Implementations apply a fixed TTL on Set and report expiry on Get.
type SessionStore interface {
	// Set stores the session under its id, stamping the TTL window.
	Set(ctx context.Context, session CheckoutSession) error

	// Get retrieves a live session. Returns ErrSessionNotFound for unknown
	// ids and ErrSessionExpired when the TTL has elapsed.
	Get(ctx context.Context, id kernel.UUID) (CheckoutSession, error)

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
