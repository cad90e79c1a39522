package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by status from
// the database. Results are sorted by order ID for consistent output.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns all orders in the given status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			merchant_id,
			destination,
			subtotal,
			delivery_fee,
			status
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersByStatusQueryResponse
		var id, merchantID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&merchantID,
			&orderResp.Destination,
			&orderResp.Subtotal,
			&orderResp.DeliveryFee,
			&status,
		)
		if err != nil {
			return nil, err
		}
		orderResp.Status = order.Status(status).String()

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderMerchantID, idErr := kernel.UUIDFromBytes(merchantID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.MerchantID = orderMerchantID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
