package merchant

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// DefaultSpecialAreaSurcharge is added to flat and distance-based fees when the
// destination resolves to a special area and the merchant has not configured
// a surcharge of its own.
const DefaultSpecialAreaSurcharge = 5.0

// ErrDeliverySettingsAreNotConstructed is returned when attempting to use
// improperly initialized DeliverySettings. Settings must be created via one of
// the per-model constructors.
var ErrDeliverySettingsAreNotConstructed = errs.NewValueIsRequiredError(
	"delivery settings must be created via NewFlatSettings, NewDistanceSettings, NewZoneSettings or NewFreeSettings")

// PricingModel identifies which delivery pricing strategy a merchant uses.
// Exactly one model is active per quote.
type PricingModel int

const (
	// UnknownModel represents an invalid or undefined pricing model.
	UnknownModel PricingModel = iota

	// Flat charges a single configured rate per delivery.
	Flat

	// DistanceBased charges a base rate plus a tiered surcharge by distance.
	DistanceBased

	// ZoneBased charges by the zone relationship between merchant and destination.
	ZoneBased

	// Free charges nothing for delivery.
	Free
)

// getPricingModelStrings returns a map of PricingModel values to their string forms.
func getPricingModelStrings() map[PricingModel]string {
	return map[PricingModel]string{
		UnknownModel:  "Unknown",
		Flat:          "FLAT",
		DistanceBased: "DISTANCE",
		ZoneBased:     "ZONE",
		Free:          "FREE",
	}
}

// Validate checks if the PricingModel value is valid.
// UnknownModel (0) and out-of-range values are invalid.
func (m PricingModel) Validate() error {
	if m < Flat || m > Free {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricing model is invalid",
			fmt.Errorf("%d is not a valid pricing model", m),
		)
	}
	return nil
}

// String returns the wire name of the pricing model.
// This method implements the fmt.Stringer interface.
func (m PricingModel) String() string {
	if str, ok := getPricingModelStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// FlatConfig carries the FLAT pricing variant.
type FlatConfig struct {
	// FlatRate is the delivery fee charged for every delivery.
	FlatRate float64

	// SpecialAreaSurcharge is added when the destination is a special area.
	// Nil means DefaultSpecialAreaSurcharge applies.
	SpecialAreaSurcharge *float64
}

// DistanceTier adds a surcharge for deliveries whose resolved distance falls
// within [MinKm, MaxKm] inclusive.
type DistanceTier struct {
	MinKm         float64
	MaxKm         float64
	AdditionalFee float64
}

// DistanceConfig carries the DISTANCE pricing variant.
type DistanceConfig struct {
	// BaseRate is charged for every delivery before tier surcharges.
	BaseRate float64

	// PerKmRate is retained for fee breakdowns in merchant dashboards.
	PerKmRate float64

	// Tiers are distance bands with additional fees. A delivery matching no
	// tier pays only the base rate.
	Tiers []DistanceTier
}

// ZoneConfig carries the ZONE pricing variant: one rate per zone relationship.
type ZoneConfig struct {
	SameZone     float64
	AdjacentZone float64
	CrossZone    float64
	SpecialArea  float64
}

// DeliverySettings is a tagged union of the four pricing strategies.
// It is validated at the boundary so the quote algorithm can dispatch
// exhaustively on Model() instead of probing optional fields.
//
// Example:
//
//	settings, err := merchant.NewZoneSettings(merchant.ZoneConfig{
//	    SameZone: 5, AdjacentZone: 7, CrossZone: 10, SpecialArea: 15,
//	}, nil)
//	if err != nil {
//	    // Handle validation error
//	}
type DeliverySettings struct { //nolint:recvcheck //using for validation
	model               PricingModel
	flat                *FlatConfig
	distance            *DistanceConfig
	zone                *ZoneConfig
	freeDeliveryMinimum *float64

	guard guard.ConstructorGuard
}

// NewFlatSettings creates FLAT settings.
// The flat rate and any surcharge must be non-negative.
func NewFlatSettings(config FlatConfig, freeDeliveryMinimum *float64) (DeliverySettings, error) {
	if err := errors.Join(
		validateNonNegative("flat rate", config.FlatRate),
		validateOptionalNonNegative("special area surcharge", config.SpecialAreaSurcharge),
		validateOptionalNonNegative("free delivery minimum", freeDeliveryMinimum),
	); err != nil {
		return DeliverySettings{}, err
	}

	return DeliverySettings{
		model:               Flat,
		flat:                &config,
		freeDeliveryMinimum: freeDeliveryMinimum,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// NewDistanceSettings creates DISTANCE settings.
// All rates must be non-negative and every tier must satisfy MinKm <= MaxKm.
func NewDistanceSettings(config DistanceConfig, freeDeliveryMinimum *float64) (DeliverySettings, error) {
	errList := []error{
		validateNonNegative("base rate", config.BaseRate),
		validateNonNegative("per km rate", config.PerKmRate),
		validateOptionalNonNegative("free delivery minimum", freeDeliveryMinimum),
	}

	for i, tier := range config.Tiers {
		if tier.MinKm < 0 || tier.MaxKm < tier.MinKm {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"distance tier",
				fmt.Errorf("tier %d has invalid bounds [%.1f, %.1f]", i, tier.MinKm, tier.MaxKm),
			))
		}
		errList = append(errList, validateNonNegative("tier additional fee", tier.AdditionalFee))
	}

	if err := errors.Join(errList...); err != nil {
		return DeliverySettings{}, err
	}

	return DeliverySettings{
		model:               DistanceBased,
		distance:            &config,
		freeDeliveryMinimum: freeDeliveryMinimum,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// NewZoneSettings creates ZONE settings.
// All four zone rates must be non-negative. No ordering between the rates is
// assumed: same-zone is not required to be cheaper than cross-zone.
func NewZoneSettings(config ZoneConfig, freeDeliveryMinimum *float64) (DeliverySettings, error) {
	if err := errors.Join(
		validateNonNegative("same zone rate", config.SameZone),
		validateNonNegative("adjacent zone rate", config.AdjacentZone),
		validateNonNegative("cross zone rate", config.CrossZone),
		validateNonNegative("special area rate", config.SpecialArea),
		validateOptionalNonNegative("free delivery minimum", freeDeliveryMinimum),
	); err != nil {
		return DeliverySettings{}, err
	}

	return DeliverySettings{
		model:               ZoneBased,
		zone:                &config,
		freeDeliveryMinimum: freeDeliveryMinimum,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// NewFreeSettings creates FREE settings: every delivery costs nothing.
func NewFreeSettings(freeDeliveryMinimum *float64) (DeliverySettings, error) {
	if err := validateOptionalNonNegative("free delivery minimum", freeDeliveryMinimum); err != nil {
		return DeliverySettings{}, err
	}

	return DeliverySettings{
		model:               Free,
		freeDeliveryMinimum: freeDeliveryMinimum,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the DeliverySettings were created through a constructor.
func (s DeliverySettings) Validate() error {
	return s.guard.Validate(ErrDeliverySettingsAreNotConstructed)
}

// Model returns the active pricing model.
func (s DeliverySettings) Model() PricingModel {
	return s.model
}

// FlatConfig returns the FLAT variant payload.
// The boolean reports whether the FLAT model is active.
func (s DeliverySettings) FlatConfig() (FlatConfig, bool) {
	if s.model != Flat || s.flat == nil {
		return FlatConfig{}, false
	}
	return *s.flat, true
}

// DistanceConfig returns the DISTANCE variant payload.
// The boolean reports whether the DISTANCE model is active.
func (s DeliverySettings) DistanceConfig() (DistanceConfig, bool) {
	if s.model != DistanceBased || s.distance == nil {
		return DistanceConfig{}, false
	}
	return *s.distance, true
}

// ZoneConfig returns the ZONE variant payload.
// The boolean reports whether the ZONE model is active.
func (s DeliverySettings) ZoneConfig() (ZoneConfig, bool) {
	if s.model != ZoneBased || s.zone == nil {
		return ZoneConfig{}, false
	}
	return *s.zone, true
}

// FreeDeliveryMinimum returns the configured free-delivery threshold.
// The boolean reports whether a threshold is set.
func (s DeliverySettings) FreeDeliveryMinimum() (float64, bool) {
	if s.freeDeliveryMinimum == nil {
		return 0, false
	}
	return *s.freeDeliveryMinimum, true
}

func validateNonNegative(paramName string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%.2f must not be negative", value),
		)
	}
	return nil
}

func validateOptionalNonNegative(paramName string, value *float64) error {
	if value == nil {
		return nil
	}
	return validateNonNegative(paramName, *value)
}
