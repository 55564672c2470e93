package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// TransitionOrderCommandHandler applies status transitions to orders.
//
// The handler enforces resource scope (may this account touch this order at
// all), the aggregate enforces the transition graph, edge permissions, and
// preconditions. The repository's conditional update guarantees that of two
// concurrent transitions on the same order at most one commits.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, checks scope, applies the transition, and commits.
// Notifications go out only after the commit succeeded; their delivery can
// neither block nor fail the transition.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = checkOrderScope(aggregate, command.Actor()); err != nil {
		return err
	}

	edge, err := aggregate.Transition(command.Target(), command.Actor().Role())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.DispatchTransition(aggregate, edge)
	return nil
}

// checkOrderScope rejects actors that may not touch the order regardless of
// the requested edge: foreign restaurant admins, foreign customers, and
// couriers the order is not assigned to. Edge-level role permission stays
// with the aggregate; an unassigned courier is let through so the aggregate
// can report the missing-courier precondition.
func checkOrderScope(aggregate *order.Order, actor *account.Account) error {
	switch actor.Role() {
	case kernel.RoleRestaurantAdmin:
		if !actor.OwnsRestaurant(aggregate.RestaurantID()) {
			return fmt.Errorf("%w: order belongs to another restaurant", ErrOrderAccessDenied)
		}
	case kernel.RoleCustomer:
		if !aggregate.CustomerID().IsEqual(actor.ID()) {
			return fmt.Errorf("%w: order belongs to another customer", ErrOrderAccessDenied)
		}
	case kernel.RoleCourier:
		if assigned := aggregate.Courier(); assigned != nil && !assigned.IsEqual(actor.ID()) {
			return fmt.Errorf("%w: order is assigned to another courier", ErrOrderAccessDenied)
		}
	}
	return nil
}
