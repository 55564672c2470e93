package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
)

// SetCourierShiftCommandHandler toggles courier shifts. A courier going off
// shift keeps any delivery already assigned to them; they only leave the
// pool for new assignments.
type SetCourierShiftCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierShiftCommandHandler creates a handler for shift toggles.
func NewSetCourierShiftCommandHandler(uowFactory CourierUoWFactory) SetCourierShiftCommandHandler {
	return SetCourierShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier, applies the toggle, and commits.
func (h SetCourierShiftCommandHandler) Handle(ctx context.Context, command SetCourierShiftCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	ownShift := actor.Role() == kernel.RoleCourier && actor.ID().IsEqual(command.CourierID())
	if !ownShift && actor.Role() != kernel.RoleSuperAdmin {
		return fmt.Errorf("%w: couriers only manage their own shift", ErrOrderAccessDenied)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CourierRepository()

	aggregate, err := repo.Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if command.OnShift() {
		aggregate.StartShift()
	} else {
		aggregate.EndShift()
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
