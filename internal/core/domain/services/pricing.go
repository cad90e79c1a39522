package services

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
)

// ErrDeliveryDisabled is returned when a quote is requested for a merchant
// that does not offer delivery. This is a user-facing rejection: checkout
// must not proceed past it.
var ErrDeliveryDisabled = errors.New("delivery is disabled for this merchant")

// deliverySpeedKmh is the assumed courier travel speed for time estimates.
const deliverySpeedKmh = 30.0

// crossZonePenaltyMinutes is added to the time estimate when the distance
// is unknown and the destination lies in a different zone than the merchant.
const crossZonePenaltyMinutes = 20

// OutOfRangeError is returned when the destination lies outside the
// merchant's delivery radius. It carries both distances so the caller can
// render an actionable message.
type OutOfRangeError struct {
	DistanceKm float64
	RadiusKm   float64
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("destination is out of range: %.1f km away, delivery radius is %.2f km", e.DistanceKm, e.RadiusKm)
}

// Quote is a computed, non-persisted delivery fee and time estimate for a
// specific merchant-destination-order combination. Repeated identical
// requests recompute it from scratch.
type Quote struct {
	// Fee is the delivery fee in dollars, rounded to cents.
	Fee float64

	// EstimatedMinutes is preparation time plus travel time.
	EstimatedMinutes int

	// DistanceKm is the merchant-to-destination distance, 0 when unknown.
	DistanceKm float64

	// DistanceResolved distinguishes an unknown distance from a genuine
	// zero-kilometre distance.
	DistanceResolved bool

	// Zone is the destination's geo-zone.
	Zone kernel.Zone

	// Model is the pricing model that produced the fee.
	Model merchant.PricingModel

	// IsSpecialArea reports whether the destination is a special-area
	// carve-out (Sentosa, Jurong Island, Tuas).
	IsSpecialArea bool

	// FreeDelivery reports whether the fee was waived.
	FreeDelivery bool

	// Message describes which pricing rule fired.
	Message string
}

// QuoteCalculator is a domain service that converts a postal code and a
// merchant configuration into a deterministic delivery quote.
//
// Key responsibilities:
//   - Rejecting quotes the merchant cannot serve (delivery disabled, out of range)
//   - Resolving distance and geo-zones from postal codes
//   - Dispatching on the merchant's pricing model (flat, distance, zone, free)
//   - Degrading gracefully when coordinates or settings are missing
//
// Business rules:
//   - A subtotal at or above the free-delivery minimum always yields a zero fee
//   - Special-area destinations carry a surcharge on flat and distance pricing
//     and a dedicated rate on zone pricing
//   - Unknown distance never fails the quote; distance pricing falls back to
//     the merchant's flat fee instead of underpricing against a zero distance
//
// QuoteCalculator is stateless and a pure function of its inputs, so it is
// safe under arbitrary concurrent invocation.
type QuoteCalculator struct{}

// NewQuoteCalculator creates a new QuoteCalculator instance.
func NewQuoteCalculator() QuoteCalculator {
	return QuoteCalculator{}
}

// Calculate produces a delivery quote for the given merchant, destination
// and order subtotal.
//
// Parameters:
//   - m: The merchant to quote for (must be valid)
//   - destination: The customer's validated postal code
//   - orderTotal: The order subtotal used for free-delivery resolution
//
// Returns:
//   - Quote: The computed quote when the merchant can serve the destination
//   - error: ErrDeliveryDisabled, *OutOfRangeError, or a validation error
func (c QuoteCalculator) Calculate(m *merchant.Merchant, destination kernel.PostalCode, orderTotal float64) (Quote, error) {
	if err := m.Validate(); err != nil {
		return Quote{}, err
	}
	if err := destination.Validate(); err != nil {
		return Quote{}, err
	}

	if !m.DeliveryEnabled() {
		return Quote{}, ErrDeliveryDisabled
	}

	distance := c.resolveDistance(m, destination)

	if radius := m.DeliveryRadiusKm(); radius > 0 && distance.Resolved && distance.Km > radius {
		return Quote{}, &OutOfRangeError{DistanceKm: distance.Km, RadiusKm: radius}
	}

	destinationZone := kernel.ZoneOf(destination)
	isSpecialArea := destinationZone == kernel.SpecialArea

	quote := Quote{
		DistanceKm:       distance.Km,
		DistanceResolved: distance.Resolved,
		Zone:             destinationZone,
		Model:            c.pricingModel(m),
		IsSpecialArea:    isSpecialArea,
	}

	if minimum, ok := m.FreeDeliveryMinimum(); ok && orderTotal >= minimum {
		quote.Fee = 0
		quote.FreeDelivery = true
		quote.Message = "Free delivery"
	} else {
		c.applyPricingModel(m, &quote)
	}

	quote.Fee = roundToCents(quote.Fee)
	quote.EstimatedMinutes = c.estimateMinutes(m, distance, destinationZone)

	return quote, nil
}

// resolveDistance computes the merchant-to-destination distance, preferring
// the merchant's exact coordinates over the district centre of its postal
// code.
func (c QuoteCalculator) resolveDistance(m *merchant.Merchant, destination kernel.PostalCode) kernel.Distance {
	if coordinates := m.Coordinates(); coordinates != nil {
		return kernel.DistanceFrom(*coordinates, destination)
	}
	return kernel.DistanceBetween(m.PostalCode(), destination)
}

// pricingModel returns the merchant's configured pricing model, falling back
// to flat-rate pricing when no delivery settings are configured.
func (c QuoteCalculator) pricingModel(m *merchant.Merchant) merchant.PricingModel {
	if settings, ok := m.Settings(); ok {
		return settings.Model()
	}
	return merchant.Flat
}

// applyPricingModel dispatches on the pricing model and fills in the fee and
// message. Exactly one pricing strategy is active per quote.
func (c QuoteCalculator) applyPricingModel(m *merchant.Merchant, quote *Quote) {
	settings, ok := m.Settings()
	if !ok {
		c.applyFlat(m, merchant.FlatConfig{}, quote)
		return
	}

	switch settings.Model() {
	case merchant.Free:
		quote.Fee = 0
		quote.FreeDelivery = true
		quote.Message = "Free delivery"
	case merchant.Flat:
		config, _ := settings.FlatConfig()
		c.applyFlat(m, config, quote)
	case merchant.DistanceBased:
		config, _ := settings.DistanceConfig()
		c.applyDistance(m, config, quote)
	case merchant.ZoneBased:
		config, _ := settings.ZoneConfig()
		c.applyZone(m, config, quote)
	default:
		c.applyFlat(m, merchant.FlatConfig{}, quote)
	}
}

// applyFlat prices the quote with a flat rate plus the special-area
// surcharge when the destination is a carve-out.
func (c QuoteCalculator) applyFlat(m *merchant.Merchant, config merchant.FlatConfig, quote *Quote) {
	fee := config.FlatRate
	if fee <= 0 {
		fee = m.FallbackFlatRate()
	}

	quote.Fee = fee
	quote.Message = "Flat rate delivery"

	if quote.IsSpecialArea {
		quote.Fee += specialAreaSurcharge(config.SpecialAreaSurcharge)
		quote.Message = "Flat rate delivery with special area surcharge"
	}
}

// applyDistance prices the quote from the base rate and the matching
// distance tier. The per-kilometre rate never enters the fee, it only feeds
// dashboard breakdowns. When the distance is unknown the entire fee falls
// back to the merchant's flat fee: applying base and tier math against a
// zero distance would silently underprice.
func (c QuoteCalculator) applyDistance(m *merchant.Merchant, config merchant.DistanceConfig, quote *Quote) {
	if !quote.DistanceResolved {
		quote.Fee = m.FallbackFlatRate()
		quote.Message = "Standard delivery fee"
		return
	}

	fee := config.BaseRate
	for _, tier := range config.Tiers {
		if tier.MinKm <= quote.DistanceKm && quote.DistanceKm <= tier.MaxKm {
			fee += tier.AdditionalFee
			break
		}
	}

	quote.Fee = fee
	quote.Message = fmt.Sprintf("Distance-based delivery (%.1f km)", quote.DistanceKm)

	if quote.IsSpecialArea {
		quote.Fee += specialAreaSurcharge(nil)
		quote.Message = fmt.Sprintf("Distance-based delivery (%.1f km) with special area surcharge", quote.DistanceKm)
	}
}

// applyZone prices the quote from the zone relation between merchant and
// destination. Special-area destinations use the dedicated rate regardless
// of zone adjacency.
func (c QuoteCalculator) applyZone(m *merchant.Merchant, config merchant.ZoneConfig, quote *Quote) {
	merchantZone := m.Zone()

	switch {
	case quote.IsSpecialArea:
		quote.Fee = config.SpecialArea
		quote.Message = "Special area delivery"
	case quote.Zone == merchantZone:
		quote.Fee = config.SameZone
		quote.Message = "Same zone delivery"
	case kernel.ZonesAreAdjacent(merchantZone, quote.Zone):
		quote.Fee = config.AdjacentZone
		quote.Message = "Adjacent zone delivery"
	default:
		quote.Fee = config.CrossZone
		quote.Message = "Cross zone delivery"
	}
}

// estimateMinutes computes preparation time plus travel time. Travel time is
// derived from the distance at the assumed courier speed; when the distance
// is unknown, crossing zones adds a flat penalty instead.
func (c QuoteCalculator) estimateMinutes(m *merchant.Merchant, distance kernel.Distance, destinationZone kernel.Zone) int {
	minutes := m.PreparationMinutes()

	if distance.Resolved {
		minutes += int(math.Ceil(distance.Km / deliverySpeedKmh * 60))
	} else if destinationZone != m.Zone() {
		minutes += crossZonePenaltyMinutes
	}

	return minutes
}

// specialAreaSurcharge resolves the surcharge amount, using the default
// when none is configured.
func specialAreaSurcharge(configured *float64) float64 {
	if configured != nil {
		return *configured
	}
	return merchant.DefaultSpecialAreaSurcharge
}

// roundToCents rounds a fee to 2 decimal places.
func roundToCents(fee float64) float64 {
	return math.Round(fee*100) / 100
}
