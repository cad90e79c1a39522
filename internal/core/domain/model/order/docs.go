// Package order provides domain entities and business logic for order
// lifecycle management in the marketplace. It implements the Order aggregate
// root with a validated status state machine and an immutable audit trail.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Event: An immutable audit record of a single status transition
//
// Key business rules:
//   - Orders must have valid identifiers, a destination postal code, and a positive subtotal
//   - Status moves only along the transition table; Refunded is terminal
//   - Cancellations and refunds require a human-readable reason
//   - Every transition (including creation) is recorded as an Event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
