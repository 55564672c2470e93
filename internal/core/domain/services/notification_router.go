package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// Recipient identifies a party to notify about an order event. The meaning
// of ID depends on Role:
//   - RoleCustomer: the customer's account ID
//   - RoleRestaurantAdmin: the restaurant ID (every admin scoped to it is addressed)
//   - RoleCourier: the courier ID
type Recipient struct {
	Role kernel.Role
	ID   kernel.UUID
}

// NotificationRouter maps order events to the set of parties that must hear
// about them.
//
// Routing rules:
//   - the customer is notified on every status change
//   - restaurant admins are notified on new orders and cancellations
//   - the courier is notified when assigned and on cancellation (if assigned)
//   - archival is bookkeeping and notifies nobody
//
// The router is pure and side-effect free; delivery is the dispatcher's job.
type NotificationRouter struct{}

// NewNotificationRouter creates a new NotificationRouter instance.
func NewNotificationRouter() NotificationRouter {
	return NotificationRouter{}
}

// RouteCreated returns the recipients for a freshly placed order: the
// restaurant that has to confirm it.
func (NotificationRouter) RouteCreated(o *order.Order) []Recipient {
	if o.Validate() != nil {
		return nil
	}

	return []Recipient{
		{Role: kernel.RoleRestaurantAdmin, ID: o.RestaurantID()},
	}
}

// RouteTransition returns the recipients for an applied status transition.
func (NotificationRouter) RouteTransition(o *order.Order, edge order.Edge) []Recipient {
	if o.Validate() != nil {
		return nil
	}
	if edge.To == order.Archived {
		return nil
	}

	recipients := []Recipient{
		{Role: kernel.RoleCustomer, ID: o.CustomerID()},
	}

	if edge.To == order.Cancelled {
		recipients = append(recipients, Recipient{Role: kernel.RoleRestaurantAdmin, ID: o.RestaurantID()})
		if courierID := o.Courier(); courierID != nil {
			recipients = append(recipients, Recipient{Role: kernel.RoleCourier, ID: *courierID})
		}
	}

	return recipients
}

// RouteCourierAssigned returns the recipients for a courier assignment: the
// courier who now has a delivery to make.
func (NotificationRouter) RouteCourierAssigned(o *order.Order) []Recipient {
	if o.Validate() != nil || o.Courier() == nil {
		return nil
	}

	return []Recipient{
		{Role: kernel.RoleCourier, ID: *o.Courier()},
	}
}
