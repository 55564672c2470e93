package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
)

// CreateAccountCommandHandler registers acting identities.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account registration.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the account with its restaurant grants and commits it.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, command CreateAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := account.NewAccount(
		command.AccountID(),
		command.Name(),
		command.Role(),
		command.Token(),
	)
	if err != nil {
		return err
	}

	for _, restaurantID := range command.RestaurantIDs() {
		if err = aggregate.GrantRestaurant(restaurantID); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
