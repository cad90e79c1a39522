// Package merchantrepo provides data transfer objects and mapping functions
// for merchant persistence. This package implements the repository pattern
// for the merchant domain aggregate, handling the conversion between domain
// entities and database representations.
package merchantrepo

import (
	"encoding/json"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for persisting merchant
// aggregates. The delivery settings tagged union is stored as a JSONB
// document and validated back into its variant on load.
type MerchantDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string
	PostalCode         string `gorm:"type:varchar(6)"`
	Latitude           *float64
	Longitude          *float64
	DeliveryEnabled    bool
	PickupEnabled      bool
	DeliveryRadiusKm   float64
	MinimumOrder       float64
	DeliveryFee        float64
	PreparationMinutes int
	Settings           []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for merchant entities.
// Overrides GORM's default naming convention to use "merchants".
func (MerchantDTO) TableName() string {
	return "merchants"
}

// settingsDTO is the JSONB document shape for the delivery settings tagged
// union. Exactly one variant field is set, matching the model tag.
type settingsDTO struct {
	Model               string       `json:"model"`
	FreeDeliveryMinimum *float64     `json:"freeDeliveryMinimum,omitempty"`
	Flat                *flatDTO     `json:"flat,omitempty"`
	Distance            *distanceDTO `json:"distance,omitempty"`
	Zone                *zoneDTO     `json:"zone,omitempty"`
}

type flatDTO struct {
	FlatRate             float64  `json:"flatRate"`
	SpecialAreaSurcharge *float64 `json:"specialAreaSurcharge,omitempty"`
}

type distanceDTO struct {
	BaseRate  float64   `json:"baseRate"`
	PerKmRate float64   `json:"perKmRate"`
	Tiers     []tierDTO `json:"tiers,omitempty"`
}

type tierDTO struct {
	MinKm         float64 `json:"minKm"`
	MaxKm         float64 `json:"maxKm"`
	AdditionalFee float64 `json:"additionalFee"`
}

type zoneDTO struct {
	SameZone     float64 `json:"sameZone"`
	AdjacentZone float64 `json:"adjacentZone"`
	CrossZone    float64 `json:"crossZone"`
	SpecialArea  float64 `json:"specialArea"`
}

// fromDomain converts a merchant domain aggregate to its database representation.
func fromDomain(aggregate *merchant.Merchant) (MerchantDTO, error) {
	dto := MerchantDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		PostalCode:         aggregate.PostalCode().String(),
		DeliveryEnabled:    aggregate.DeliveryEnabled(),
		PickupEnabled:      aggregate.PickupEnabled(),
		DeliveryRadiusKm:   aggregate.DeliveryRadiusKm(),
		MinimumOrder:       aggregate.MinimumOrder(),
		DeliveryFee:        aggregate.DeliveryFee(),
		PreparationMinutes: aggregate.PreparationMinutes(),
	}

	if coordinates := aggregate.Coordinates(); coordinates != nil {
		latitude := coordinates.Latitude()
		longitude := coordinates.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	settings, ok := aggregate.Settings()
	if !ok {
		return dto, nil
	}

	payload, err := settingsToDTO(settings)
	if err != nil {
		return MerchantDTO{}, err
	}
	dto.Settings = payload

	return dto, nil
}

func settingsToDTO(settings merchant.DeliverySettings) ([]byte, error) {
	payload := settingsDTO{
		Model: settings.Model().String(),
	}

	if minimum, ok := settings.FreeDeliveryMinimum(); ok {
		payload.FreeDeliveryMinimum = &minimum
	}

	if config, ok := settings.FlatConfig(); ok {
		payload.Flat = &flatDTO{
			FlatRate:             config.FlatRate,
			SpecialAreaSurcharge: config.SpecialAreaSurcharge,
		}
	}

	if config, ok := settings.DistanceConfig(); ok {
		tiers := make([]tierDTO, 0, len(config.Tiers))
		for _, tier := range config.Tiers {
			tiers = append(tiers, tierDTO(tier))
		}
		payload.Distance = &distanceDTO{
			BaseRate:  config.BaseRate,
			PerKmRate: config.PerKmRate,
			Tiers:     tiers,
		}
	}

	if config, ok := settings.ZoneConfig(); ok {
		zone := zoneDTO(config)
		payload.Zone = &zone
	}

	return json.Marshal(payload)
}

// toDomain converts a database DTO to a merchant domain aggregate.
// Reconstructs the settings tagged union through its validating constructors.
func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	postalCode, err := kernel.NewPostalCode(dto.PostalCode)
	if err != nil {
		return nil, err
	}

	profile := merchant.DeliveryProfile{
		DeliveryEnabled:    dto.DeliveryEnabled,
		PickupEnabled:      dto.PickupEnabled,
		DeliveryRadiusKm:   dto.DeliveryRadiusKm,
		MinimumOrder:       dto.MinimumOrder,
		DeliveryFee:        dto.DeliveryFee,
		PreparationMinutes: dto.PreparationMinutes,
	}

	if dto.Latitude != nil && dto.Longitude != nil {
		coordinates, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		profile.Coordinates = &coordinates
	}

	if len(dto.Settings) > 0 {
		settings, settingsErr := settingsFromDTO(dto.Settings)
		if settingsErr != nil {
			return nil, settingsErr
		}
		profile.Settings = settings
	}

	return merchant.RestoreMerchant(id, dto.Name, postalCode, profile)
}

func settingsFromDTO(raw []byte) (*merchant.DeliverySettings, error) {
	var payload settingsDTO
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	var settings merchant.DeliverySettings
	var err error

	switch {
	case payload.Flat != nil:
		settings, err = merchant.NewFlatSettings(merchant.FlatConfig{
			FlatRate:             payload.Flat.FlatRate,
			SpecialAreaSurcharge: payload.Flat.SpecialAreaSurcharge,
		}, payload.FreeDeliveryMinimum)
	case payload.Distance != nil:
		tiers := make([]merchant.DistanceTier, 0, len(payload.Distance.Tiers))
		for _, tier := range payload.Distance.Tiers {
			tiers = append(tiers, merchant.DistanceTier(tier))
		}
		settings, err = merchant.NewDistanceSettings(merchant.DistanceConfig{
			BaseRate:  payload.Distance.BaseRate,
			PerKmRate: payload.Distance.PerKmRate,
			Tiers:     tiers,
		}, payload.FreeDeliveryMinimum)
	case payload.Zone != nil:
		settings, err = merchant.NewZoneSettings(merchant.ZoneConfig(*payload.Zone), payload.FreeDeliveryMinimum)
	default:
		settings, err = merchant.NewFreeSettings(payload.FreeDeliveryMinimum)
	}

	if err != nil {
		return nil, err
	}
	return &settings, nil
}
