// Package services provides domain services that implement business logic
// spanning multiple aggregates in the marketplace.
//
// The package includes:
//   - QuoteCalculator: Converts a merchant configuration and a destination
//     postal code into a deterministic delivery quote
//
// Domain services in this package are stateless and contain pure business
// logic. They coordinate domain entities without depending on any
// infrastructure concerns, following Domain-Driven Design principles.
package services
