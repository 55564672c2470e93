package commands

import (
	"context"
)

// LinkTelegramCommandHandler binds Telegram chats to accounts so the
// dispatcher and the bot can reach them.
type LinkTelegramCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewLinkTelegramCommandHandler creates a handler for chat linking.
func NewLinkTelegramCommandHandler(uowFactory AccountUoWFactory) LinkTelegramCommandHandler {
	return LinkTelegramCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the token to its account, binds the chat, and commits.
// Linking again from a new chat simply rebinds.
func (h LinkTelegramCommandHandler) Handle(ctx context.Context, command LinkTelegramCommand) error {
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

	repo := uow.AccountRepository()

	aggregate, err := repo.GetByToken(ctx, command.Token())
	if err != nil {
		return err
	}

	if err = aggregate.LinkTelegram(command.ChatID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
