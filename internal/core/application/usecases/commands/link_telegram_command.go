package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrLinkTelegramCommandIsNotConstructed = errors.New(
		"LinkTelegramCommand must be created via NewLinkTelegramCommand constructor",
	)
)

// LinkTelegramCommand represents a request to bind a Telegram chat to the
// account owning the presented token. Issued by the bot when someone sends
// /start with their access token.
type LinkTelegramCommand struct { //nolint:recvcheck //using for validation
	token  string
	chatID int64

	guard guard.ConstructorGuard
}

// NewLinkTelegramCommand creates a chat link request.
func NewLinkTelegramCommand(token string, chatID int64) (LinkTelegramCommand, error) {
	if token == "" {
		return LinkTelegramCommand{}, errs.NewValueIsRequiredError("token")
	}
	if chatID == 0 {
		return LinkTelegramCommand{}, errs.NewValueIsRequiredError("chatID")
	}

	return LinkTelegramCommand{
		token:  token,
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkTelegramCommand) Validate() error {
	return c.guard.Validate(ErrLinkTelegramCommandIsNotConstructed)
}

// Token returns the access token identifying the account.
func (c LinkTelegramCommand) Token() string {
	return c.token
}

// ChatID returns the Telegram chat to bind.
func (c LinkTelegramCommand) ChatID() int64 {
	return c.chatID
}
