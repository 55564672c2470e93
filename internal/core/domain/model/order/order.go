package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidTransition is returned when the requested target status is not a
	// direct successor of the current status in the transition graph.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrUnauthorizedTransition is returned when the edge exists but the acting
	// role is not in its permitted-role set.
	ErrUnauthorizedTransition = errors.New("role is not permitted to perform this transition")

	// ErrPreconditionFailed is returned when an edge requires an associated
	// entity that is missing, e.g. picking up an order without an assigned courier.
	ErrPreconditionFailed = errors.New("transition precondition failed")

	// ErrCourierNotAssignable is returned when a courier assignment is attempted
	// in a status that does not allow it.
	ErrCourierNotAssignable = errors.New("order status does not allow courier assignment")
)

// Order represents a marketplace order. It is the aggregate root that manages
// the order lifecycle from placement through preparation and delivery to
// archival.
//
// Order maintains these invariants:
//   - identifiers and address are valid, items are non-empty
//   - status only ever moves along the defined transition graph
//   - the role triggering a transition must be permitted for that edge
//   - an order cannot be picked up without an assigned courier
//   - orders are never deleted, only status-terminated
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through Transition and AssignCourier.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// restaurantID references the restaurant the order was placed with
	restaurantID kernel.UUID

	// customerID references the ordering customer
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// items are the ordered lines with price snapshots (never empty)
	items []Item

	// address is the delivery destination
	address kernel.Address

	// status is the current state in the order lifecycle
	status Status

	// loadedStatus is the status the aggregate was loaded/created with;
	// repositories use it for conditional updates
	loadedStatus Status

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the entry point of
// the order lifecycle and the only way to place an order.
//
// Parameters:
//   - id: unique identifier for the order
//   - restaurantID: the restaurant receiving the order
//   - customerID: the ordering customer
//   - address: validated delivery address
//   - items: at least one validated order line
//
// Returns a validation error if any input is invalid.
func NewOrder(id, restaurantID, customerID kernel.UUID, address kernel.Address, items []Item) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		loadedStatus:  Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// business rules of NewOrder. The stored status becomes both the current and
// the loaded status. Used exclusively by repositories.
func RestoreOrder(
	id, restaurantID, customerID kernel.UUID,
	courierID *kernel.UUID,
	address kernel.Address,
	items []Item,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		courierID:     courierID,
		status:        status,
		loadedStatus:  status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID, nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate had when it was created or
// loaded from persistence. Repositories condition their updates on it so two
// concurrent transitions on the same order cannot both commit.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last applied transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total returns the order total in minor currency units.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// Transition moves the order to target on behalf of actorRole.
//
// The transition is validated in three steps, matching the error taxonomy:
//  1. the (current, target) pair must be an edge of the transition graph,
//     otherwise ErrInvalidTransition
//  2. actorRole must be in the edge's permitted-role set,
//     otherwise ErrUnauthorizedTransition
//  3. edge preconditions must hold (PickedUp requires an assigned courier),
//     otherwise ErrPreconditionFailed
//
// On success the order's status and updated timestamp change and the applied
// Edge is returned for notification dispatch. On failure the order is left
// untouched.
func (o *Order) Transition(target Status, actorRole kernel.Role) (Edge, error) {
	if err := target.Validate(); err != nil {
		return Edge{}, err
	}
	if err := actorRole.Validate(); err != nil {
		return Edge{}, err
	}

	if !o.status.CanTransitionTo(target) {
		return Edge{}, fmt.Errorf("%w: %s is not a valid successor of %s",
			ErrInvalidTransition, target, o.status)
	}
	if !o.status.RolePermitted(target, actorRole) {
		return Edge{}, fmt.Errorf("%w: %s may not apply %s",
			ErrUnauthorizedTransition, actorRole, Edge{From: o.status, To: target})
	}
	if target == PickedUp && o.courierID == nil {
		return Edge{}, fmt.Errorf("%w: no courier assigned", ErrPreconditionFailed)
	}

	edge := Edge{From: o.status, To: target}
	o.status = target
	o.updatedAt = time.Now().UTC()
	return edge, nil
}

// AssignCourier binds a courier to the order. Assignment is allowed while the
// restaurant is working on the order (Confirmed, Preparing, ReadyForPickup);
// reassignment is permitted in the same window. The courier must be set
// before the ReadyForPickup→PickedUp edge can be taken.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case Confirmed, Preparing, ReadyForPickup:
		o.courierID = &courierID
		o.updatedAt = time.Now().UTC()
		return nil
	default:
		return fmt.Errorf("%w: status is %s", ErrCourierNotAssignable, o.status)
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
