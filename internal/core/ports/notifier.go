package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Recipient identifies who a notification is addressed to.
type Recipient int

const (
	// UnknownRecipient represents an invalid or undefined recipient.
	UnknownRecipient Recipient = iota

	// CustomerRecipient addresses the customer who placed the order.
	CustomerRecipient

	// MerchantRecipient addresses the merchant fulfilling the order.
	MerchantRecipient
)

// String returns the recipient name for logging and message payloads.
func (r Recipient) String() string {
	switch r {
	case CustomerRecipient:
		return "customer"
	case MerchantRecipient:
		return "merchant"
	default:
		return "unknown"
	}
}

// Notification carries the data needed to inform a party about an order
// status change.
type Notification struct {
	Recipient Recipient
	OrderID   kernel.UUID
	From      order.Status
	To        order.Status
	Reason    string
}

// Notifier dispatches notifications about order status changes. Dispatch is
// best-effort: implementations log failures and never propagate them, so a
// failed send can never roll back a committed transition.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}
