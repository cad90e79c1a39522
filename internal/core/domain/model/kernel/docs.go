// Package kernel provides core domain primitives and utilities for the marketplace.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - PostalCode: A validated six-digit postal code driving zone and coordinate lookup
//   - Zone: A coarse region label with a fixed adjacency relation for zone-based pricing
//   - GeoPoint: A WGS84 coordinate pair with great-circle distance calculation
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// Zone resolution and district coordinates are static, versioned lookup tables
// bundled with the engine rather than fetched at runtime.
package kernel
