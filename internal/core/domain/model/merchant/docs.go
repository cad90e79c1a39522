// Package merchant provides domain entities for food merchants on the marketplace.
// It implements the Merchant aggregate root, which owns the delivery configuration
// consumed by the geo-pricing engine.
//
// The package includes:
//   - Merchant: The aggregate root with delivery profile and business-rule checks
//   - DeliverySettings: A tagged union of the four pricing strategies
//     (FLAT, DISTANCE, ZONE, FREE), validated at the boundary
//   - PricingModel: The discriminant of the settings union
//
// Key business rules:
//   - Exactly one pricing strategy is active per merchant
//   - Unset settings fall back to a flat rate with explicit precedence:
//     settings rate, then merchant delivery fee, then DefaultFlatRate
//   - The minimum order gates checkout independently of the delivery fee
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package merchant
