package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSetCourierShiftCommandIsNotConstructed = errors.New(
		"SetCourierShiftCommand must be created via NewSetCourierShiftCommand constructor",
	)
)

// SetCourierShiftCommand represents a request to start or end a courier's
// shift. Couriers toggle their own shift; super admins may toggle anyone's.
type SetCourierShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	onShift   bool
	actor     *account.Account

	guard guard.ConstructorGuard
}

// NewSetCourierShiftCommand creates a shift toggle request.
func NewSetCourierShiftCommand(courierID kernel.UUID, onShift bool, actor *account.Account) (SetCourierShiftCommand, error) {
	if err := errors.Join(
		courierID.Validate(),
		actor.Validate(),
	); err != nil {
		return SetCourierShiftCommand{}, err
	}

	return SetCourierShiftCommand{
		courierID: courierID,
		onShift:   onShift,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierShiftCommandIsNotConstructed)
}

// CourierID returns the courier whose shift is toggled.
func (c SetCourierShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

// OnShift returns the desired shift state.
func (c SetCourierShiftCommand) OnShift() bool {
	return c.onShift
}

// Actor returns the account performing the toggle.
func (c SetCourierShiftCommand) Actor() *account.Account {
	return c.actor
}
