package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateAccountCommandIsNotConstructed = errors.New(
		"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
	)
)

// CreateAccountCommand represents a request to register a new acting identity
// with a role, an access token and, for restaurant admins, restaurant grants.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID     kernel.UUID
	name          string
	role          kernel.Role
	token         string
	restaurantIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register an account.
// Restaurant grants are only meaningful for restaurant admins; for every
// other role they must be empty.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	name string,
	role kernel.Role,
	token string,
	restaurantIDs []kernel.UUID,
) (CreateAccountCommand, error) {
	if err := accountID.Validate(); err != nil {
		return CreateAccountCommand{}, err
	}
	if name == "" {
		return CreateAccountCommand{}, errs.NewValueIsRequiredError("name")
	}
	if err := role.Validate(); err != nil {
		return CreateAccountCommand{}, err
	}
	if token == "" {
		return CreateAccountCommand{}, errs.NewValueIsRequiredError("token")
	}
	if len(restaurantIDs) > 0 && role != kernel.RoleRestaurantAdmin {
		return CreateAccountCommand{}, errs.NewValueIsInvalidError("restaurantIDs")
	}
	for _, restaurantID := range restaurantIDs {
		if err := restaurantID.Validate(); err != nil {
			return CreateAccountCommand{}, err
		}
	}

	return CreateAccountCommand{
		accountID:     accountID,
		name:          name,
		role:          role,
		token:         token,
		restaurantIDs: restaurantIDs,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the identifier the new account will carry.
func (c CreateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the account holder's display name.
func (c CreateAccountCommand) Name() string {
	return c.name
}

// Role returns the role the account acts under.
func (c CreateAccountCommand) Role() kernel.Role {
	return c.role
}

// Token returns the opaque bearer token the account authenticates with.
func (c CreateAccountCommand) Token() string {
	return c.token
}

// RestaurantIDs returns the restaurants the account administers.
func (c CreateAccountCommand) RestaurantIDs() []kernel.UUID {
	return c.restaurantIDs
}
