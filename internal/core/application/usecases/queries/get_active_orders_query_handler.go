package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the in-flight order board from the
// database. Delivered, cancelled, and archived orders are excluded.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by creation time so the
// oldest waiting order tops the board.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []string{
		order.Pending.String(),
		order.Confirmed.String(),
		order.Preparing.String(),
		order.ReadyForPickup.String(),
		order.PickedUp.String(),
	}

	tx := h.db.WithContext(ctx)
	var rowsQuery *gorm.DB
	if restaurantID := query.RestaurantID(); restaurantID != nil {
		rowsQuery = tx.Raw(`
			SELECT
				id,
				restaurant_id,
				customer_id,
				courier_id,
				street,
				status
			FROM orders
			WHERE status IN ? AND restaurant_id = ?
			ORDER BY created_at
		`, activeStatuses, restaurantID.String())
	} else {
		rowsQuery = tx.Raw(`
			SELECT
				id,
				restaurant_id,
				customer_id,
				courier_id,
				street,
				status
			FROM orders
			WHERE status IN ?
			ORDER BY created_at
		`, activeStatuses)
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, restaurantID, customerID uuid.UUID
		var courierID uuid.NullUUID

		if err = rows.Scan(
			&id,
			&restaurantID,
			&customerID,
			&courierID,
			&resp.Street,
			&resp.Status,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &assigned
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
