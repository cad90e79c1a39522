// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and merchant.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID `gorm:"type:uuid;index"`
	Destination string    `gorm:"type:varchar(6)"`
	Subtotal    float64
	DeliveryFee float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// EventDTO represents one row of an order's audit trail. Rows are append-only
// and written in the same transaction as the status update they record.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus int
	ToStatus   int
	Actor      string
	Reason     string
	OccurredAt time.Time
}

// TableName specifies the database table name for order audit events.
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		MerchantID:  aggregate.MerchantID().Bytes(),
		Destination: aggregate.Destination().String(),
		Subtotal:    aggregate.Subtotal(),
		DeliveryFee: aggregate.DeliveryFee(),
		Status:      int(aggregate.Status()),
	}
}

// eventFromDomain converts an audit event to its database representation.
func eventFromDomain(event order.Event) EventDTO {
	return EventDTO{
		ID:         event.ID().Bytes(),
		OrderID:    event.OrderID().Bytes(),
		FromStatus: int(event.From()),
		ToStatus:   int(event.To()),
		Actor:      event.Actor(),
		Reason:     event.Reason(),
		OccurredAt: event.OccurredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewPostalCode(dto.Destination)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, merchantID, destination, dto.Subtotal, dto.DeliveryFee, order.Status(dto.Status))
}
