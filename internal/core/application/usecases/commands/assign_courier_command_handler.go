package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrCourierNotOnShift is returned when the chosen courier is not
	// currently taking orders.
	ErrCourierNotOnShift = errors.New("courier is not on shift")
)

// AssignCourierCommandHandler binds couriers to orders. Only restaurant
// admins scoped to the order's restaurant (or super admins) may assign, and
// only on-shift couriers are assignable. On success the courier is notified
// about their new delivery.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	dispatcher EventDispatcher
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, dispatcher EventDispatcher) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads order and courier, validates scope and availability, applies
// the assignment, and commits. The courier notification goes out after the
// commit.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if actor.Role() != kernel.RoleRestaurantAdmin && actor.Role() != kernel.RoleSuperAdmin {
		return fmt.Errorf("%w: only restaurant admins assign couriers", ErrOrderAccessDenied)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	couriersRepo := uow.CourierRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !actor.OwnsRestaurant(aggregate.RestaurantID()) {
		return fmt.Errorf("%w: order belongs to another restaurant", ErrOrderAccessDenied)
	}

	assignee, err := couriersRepo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}
	if !assignee.OnShift() {
		return fmt.Errorf("%w: %s", ErrCourierNotOnShift, assignee.Name())
	}

	if err = aggregate.AssignCourier(assignee.ID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.DispatchCourierAssigned(aggregate)
	return nil
}
