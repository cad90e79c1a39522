package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetOrderEventsQueryHandler retrieves an order's audit trail from the
// database, oldest event first.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle executes the query and returns the recorded transitions in
// chronological order.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetOrderEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			from_status,
			to_status,
			actor,
			reason,
			occurred_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventResp GetOrderEventsQueryResponse
		var id, orderID uuid.UUID
		var fromStatus, toStatus int

		err = rows.Scan(
			&id,
			&orderID,
			&fromStatus,
			&toStatus,
			&eventResp.Actor,
			&eventResp.Reason,
			&eventResp.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		eventResp.From = order.Status(fromStatus).String()
		eventResp.To = order.Status(toStatus).String()

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		eventResp.ID = eventID

		eventOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		eventResp.OrderID = eventOrderID

		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
