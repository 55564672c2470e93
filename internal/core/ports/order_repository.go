// Package ports defines the contracts between the domain/application core
// and infrastructure adapters: repositories, the unit of work, and the
// outbound notification channel.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is conditional
	// on the aggregate's loaded status: if the stored status no longer
	// matches (a concurrent transition won), Update returns an error
	// unwrapping to errs.ErrVersionIsInvalid and persists nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are still in flight
	// (not delivered, cancelled, or archived).
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveByRestaurant retrieves the in-flight orders of one restaurant.
	GetAllActiveByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllFinishedBefore retrieves delivered and cancelled orders whose last
	// update is older than cutoff. Used by the archival job.
	GetAllFinishedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
