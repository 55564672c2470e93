// Package telegram implements the outbound notification channel on top of
// the Telegram Bot API. Messages carry inline keyboards whose buttons map
// back to order transitions via callback payloads.
package telegram

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the slice of the Bot API the notifier needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers rendered notifications to Telegram chats. Delivery is
// best-effort at-most-once; a failed send is reported to the caller, who
// logs it and moves on.
type Notifier struct {
	api    sender
	logger *slog.Logger
}

// NewNotifier creates a Telegram-backed notifier.
func NewNotifier(api sender, logger *slog.Logger) *Notifier {
	return &Notifier{
		api:    api,
		logger: logger.With("component", "telegram_notifier"),
	}
}

// Send delivers one message. The Bot API client has no context support, so
// the context is only checked before the call.
func (n *Notifier) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if len(msg.Actions) > 0 {
		out.ReplyMarkup = buildKeyboard(msg.Actions)
	}

	if _, err := n.api.Send(out); err != nil {
		return err
	}

	n.logger.DebugContext(ctx, "Notification delivered", "chat_id", msg.ChatID)
	return nil
}

// buildKeyboard renders the actions as one inline button per row, in the
// order given.
func buildKeyboard(actions []ports.Action) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(action.Label, action.Callback),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
