package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders still in flight, optionally
// narrowed to one restaurant. Restaurant admins see only their own
// restaurants; super admins see the whole board.
//
// Example:
//
//	query := NewGetActiveOrdersQuery(nil)
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("Found %d orders in flight\n", len(orders))
type GetActiveOrdersQuery struct {
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for in-flight orders. A nil
// restaurantID returns orders across all restaurants.
func NewGetActiveOrdersQuery(restaurantID *kernel.UUID) (GetActiveOrdersQuery, error) {
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}

	return GetActiveOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant filter, nil when unfiltered.
func (q GetActiveOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// GetActiveOrdersQueryResponse represents one in-flight order on the board.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	CourierID    *kernel.UUID
	Street       string
	Status       string
}
