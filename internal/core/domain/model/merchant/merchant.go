package merchant

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// DefaultFlatRate is the last-resort delivery fee when neither the
	// settings nor the merchant profile carry a usable rate.
	DefaultFlatRate = 5.0

	// DefaultPreparationMinutes is assumed when a merchant has not
	// configured a preparation time.
	DefaultPreparationMinutes = 30
)

var (
	// ErrMerchantIsNotConstructed is returned when a Merchant instance was not
	// created through NewMerchant or RestoreMerchant.
	ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant constructor")

	// ErrNameIsRequired is returned when a merchant name is empty.
	ErrNameIsRequired = errors.New("merchant name is required")
)

// MinimumOrderNotMetError is the business-rule rejection raised at checkout
// when the order subtotal is below the merchant's minimum. It carries the
// shortfall so callers can render an actionable message.
type MinimumOrderNotMetError struct {
	Minimum  float64
	Subtotal float64
}

// Error implements the error interface.
func (e *MinimumOrderNotMetError) Error() string {
	return fmt.Sprintf("minimum order of %.2f not met: subtotal %.2f is short by %.2f",
		e.Minimum, e.Subtotal, e.Shortfall())
}

// Shortfall returns the amount missing to reach the minimum order.
func (e *MinimumOrderNotMetError) Shortfall() float64 {
	return e.Minimum - e.Subtotal
}

// DeliveryProfile groups the delivery configuration of a merchant.
// Settings is optional: a merchant without configured settings is priced with
// a flat-rate default derived from DeliveryFee.
type DeliveryProfile struct {
	DeliveryEnabled    bool
	PickupEnabled      bool
	DeliveryRadiusKm   float64
	MinimumOrder       float64
	DeliveryFee        float64
	PreparationMinutes int
	Coordinates        *kernel.GeoPoint
	Settings           *DeliverySettings
}

// Merchant is the aggregate root for a food merchant on the marketplace.
// It owns the delivery configuration consumed by the geo-pricing engine.
//
// Merchant follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Must have a valid postal code (coordinates are optional)
//   - Delivery radius, minimum order, fee and preparation time are non-negative
//   - Configured delivery settings are always a validated tagged union
//   - Can only be created through NewMerchant or RestoreMerchant
type Merchant struct {
	id                 kernel.UUID
	name               string
	postalCode         kernel.PostalCode
	coordinates        *kernel.GeoPoint
	deliveryEnabled    bool
	pickupEnabled      bool
	deliveryRadiusKm   float64
	minimumOrder       float64
	deliveryFee        float64
	preparationMinutes int
	settings           *DeliverySettings

	isConstructed bool
}

// NewMerchant creates a new Merchant with validation. This is the only way to
// create a valid Merchant, ensuring all business invariants hold.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - postalCode: The merchant's validated postal code
//   - profile: Delivery configuration; zero values fall back to safe defaults
//
// Returns:
//   - *Merchant: The created merchant if all validations pass
//   - error: Validation error if any parameter is invalid
func NewMerchant(
	id kernel.UUID,
	name string,
	postalCode kernel.PostalCode,
	profile DeliveryProfile,
) (*Merchant, error) {
	m := &Merchant{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPostalCode(postalCode),
		m.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMerchant reconstructs a Merchant from persistence.
// Applies the same validation as NewMerchant.
func RestoreMerchant(
	id kernel.UUID,
	name string,
	postalCode kernel.PostalCode,
	profile DeliveryProfile,
) (*Merchant, error) {
	return NewMerchant(id, name, postalCode, profile)
}

// Validate ensures the Merchant was constructed through a constructor.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}
	return nil
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Name returns the merchant's display name.
func (m *Merchant) Name() string {
	return m.name
}

// PostalCode returns the merchant's postal code.
func (m *Merchant) PostalCode() kernel.PostalCode {
	return m.postalCode
}

// Coordinates returns the merchant's stored coordinates.
// Returns nil when the merchant has no stored coordinates; callers fall back
// to the district centroid table.
func (m *Merchant) Coordinates() *kernel.GeoPoint {
	return m.coordinates
}

// Zone returns the merchant's geographic zone derived from its postal code.
func (m *Merchant) Zone() kernel.Zone {
	return kernel.ZoneOf(m.postalCode)
}

// DeliveryEnabled reports whether the merchant offers delivery at all.
func (m *Merchant) DeliveryEnabled() bool {
	return m.deliveryEnabled
}

// PickupEnabled reports whether the merchant offers self-pickup.
func (m *Merchant) PickupEnabled() bool {
	return m.pickupEnabled
}

// DeliveryRadiusKm returns the delivery radius ceiling in kilometers.
// A radius of 0 means the merchant serves any resolvable destination.
func (m *Merchant) DeliveryRadiusKm() float64 {
	return m.deliveryRadiusKm
}

// MinimumOrder returns the minimum order subtotal required at checkout.
func (m *Merchant) MinimumOrder() float64 {
	return m.minimumOrder
}

// DeliveryFee returns the merchant-level flat delivery fee used as a fallback
// when delivery settings are missing or distance cannot be resolved.
func (m *Merchant) DeliveryFee() float64 {
	return m.deliveryFee
}

// PreparationMinutes returns the configured preparation time,
// or DefaultPreparationMinutes when unset.
func (m *Merchant) PreparationMinutes() int {
	if m.preparationMinutes <= 0 {
		return DefaultPreparationMinutes
	}
	return m.preparationMinutes
}

// Settings returns the configured delivery settings.
// The boolean reports whether the merchant has explicit settings; without them
// callers price with FallbackFlatRate.
func (m *Merchant) Settings() (DeliverySettings, bool) {
	if m.settings == nil {
		return DeliverySettings{}, false
	}
	return *m.settings, true
}

// FallbackFlatRate resolves the flat delivery fee by explicit precedence:
//
//  1. The FLAT settings rate, when FLAT settings are configured
//  2. The merchant-level delivery fee, when positive
//  3. DefaultFlatRate
//
// The precedence is intentionally a single tested list rather than fallback
// chains scattered across call sites.
func (m *Merchant) FallbackFlatRate() float64 {
	if m.settings != nil {
		if flat, ok := m.settings.FlatConfig(); ok && flat.FlatRate > 0 {
			return flat.FlatRate
		}
	}

	if m.deliveryFee > 0 {
		return m.deliveryFee
	}

	return DefaultFlatRate
}

// FreeDeliveryMinimum resolves the free-delivery threshold by precedence:
// the settings' threshold when configured, otherwise the merchant's minimum
// order when positive. The boolean reports whether any threshold applies.
func (m *Merchant) FreeDeliveryMinimum() (float64, bool) {
	if m.settings != nil {
		if minimum, ok := m.settings.FreeDeliveryMinimum(); ok {
			return minimum, true
		}
	}

	if m.minimumOrder > 0 {
		return m.minimumOrder, true
	}

	return 0, false
}

// CheckMinimumOrder validates an order subtotal against the merchant minimum.
// Returns a MinimumOrderNotMetError carrying the shortfall when below it.
func (m *Merchant) CheckMinimumOrder(subtotal float64) error {
	if subtotal < m.minimumOrder {
		return &MinimumOrderNotMetError{Minimum: m.minimumOrder, Subtotal: subtotal}
	}
	return nil
}

func (m *Merchant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Merchant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Merchant) setPostalCode(postalCode kernel.PostalCode) error {
	if err := postalCode.Validate(); err != nil {
		return err
	}
	m.postalCode = postalCode
	return nil
}

func (m *Merchant) setProfile(profile DeliveryProfile) error {
	errList := []error{
		validateNonNegative("delivery radius", profile.DeliveryRadiusKm),
		validateNonNegative("minimum order", profile.MinimumOrder),
		validateNonNegative("delivery fee", profile.DeliveryFee),
	}

	if profile.PreparationMinutes < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"preparation minutes",
			fmt.Errorf("%d must not be negative", profile.PreparationMinutes),
		))
	}

	if profile.Coordinates != nil {
		errList = append(errList, profile.Coordinates.Validate())
	}

	if profile.Settings != nil {
		errList = append(errList, profile.Settings.Validate())
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	m.deliveryEnabled = profile.DeliveryEnabled
	m.pickupEnabled = profile.PickupEnabled
	m.deliveryRadiusKm = profile.DeliveryRadiusKm
	m.minimumOrder = profile.MinimumOrder
	m.deliveryFee = profile.DeliveryFee
	m.preparationMinutes = profile.PreparationMinutes
	m.coordinates = profile.Coordinates
	m.settings = profile.Settings
	return nil
}
