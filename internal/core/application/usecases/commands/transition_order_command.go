package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)

	// ErrOrderAccessDenied is returned when the acting account is not allowed
	// to touch the order at all: a restaurant admin outside the order's
	// restaurant, a customer who did not place it, or a courier it is not
	// assigned to.
	ErrOrderAccessDenied = errors.New("actor may not act on this order")
)

// TransitionOrderCommand represents a request to move an order to a new
// status on behalf of an authenticated account.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   *account.Account

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request. The actor is the
// resolved account of the caller; its role decides which edges it may take.
func NewTransitionOrderCommand(orderID kernel.UUID, target order.Status, actor *account.Account) (TransitionOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actor.Validate(),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the account performing the transition.
func (c TransitionOrderCommand) Actor() *account.Account {
	return c.actor
}
