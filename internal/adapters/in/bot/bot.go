// Package bot implements the inbound Telegram adapter: a long-poll update
// loop that turns button presses on order notifications into status
// transitions, and /start messages into chat links.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const callbackPrefix = "order:"

// api is the slice of the Bot API the update loop needs.
type api interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Config holds the bot's tunables. Kept explicit so the composition root
// decides everything and the bot carries no ambient state.
type Config struct {
	PollTimeoutSeconds int
}

// Bot consumes Telegram updates and drives order transitions on behalf of
// the account linked to the chat.
type Bot struct {
	api         api
	config      Config
	transitions commands.TransitionOrderCommandHandler
	links       commands.LinkTelegramCommandHandler
	accounts    ports.AccountRepository
	logger      *slog.Logger
}

// NewBot creates the update-loop adapter.
func NewBot(
	botAPI api,
	config Config,
	transitions commands.TransitionOrderCommandHandler,
	links commands.LinkTelegramCommandHandler,
	accounts ports.AccountRepository,
	logger *slog.Logger,
) *Bot {
	return &Bot{
		api:         botAPI,
		config:      config,
		transitions: transitions,
		links:       links,
		accounts:    accounts,
		logger:      logger.With("component", "telegram_bot"),
	}
}

// Run consumes updates until the context is cancelled. It blocks; callers
// start it on its own goroutine.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.config.PollTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)
	b.logger.InfoContext(ctx, "Telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.InfoContext(ctx, "Telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleCallback applies the transition encoded in a pressed button. The
// press is answered in every case so the client stops its spinner.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	_, _ = b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	orderID, target, err := parseCallback(cq.Data)
	if err != nil {
		b.logger.WarnContext(ctx, "Ignoring malformed callback", "data", cq.Data, "error", err)
		return
	}

	actor, err := b.accounts.GetByChatID(ctx, chatID)
	if err != nil {
		b.reply(chatID, "This chat is not linked to an account. Send /start <token> first.")
		return
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		b.reply(chatID, "Could not process that action.")
		return
	}

	if err := b.transitions.Handle(ctx, cmd); err != nil {
		b.logger.WarnContext(ctx, "Transition via bot rejected",
			"order_id", orderID, "target", target, "error", err)
		b.reply(chatID, transitionFailureText(err))
		return
	}

	b.reply(chatID, fmt.Sprintf("Order %s is now %s.", orderID, target))
}

// handleMessage links the chat to an account on "/start <token>".
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/start") {
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(text, "/start"))
	if token == "" {
		b.reply(msg.Chat.ID, "Send /start <token> to link this chat to your account.")
		return
	}

	cmd, err := commands.NewLinkTelegramCommand(token, msg.Chat.ID)
	if err != nil {
		b.reply(msg.Chat.ID, "Could not link this chat.")
		return
	}

	if err := b.links.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			b.reply(msg.Chat.ID, "Unknown token.")
			return
		}
		b.logger.ErrorContext(ctx, "Chat link failed", "chat_id", msg.Chat.ID, "error", err)
		b.reply(msg.Chat.ID, "Could not link this chat, try again later.")
		return
	}

	b.reply(msg.Chat.ID, "Chat linked. You will receive order updates here.")
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

// parseCallback decodes an "order:<id>:<status>" payload.
func parseCallback(data string) (kernel.UUID, order.Status, error) {
	if !strings.HasPrefix(data, callbackPrefix) {
		return kernel.UUID{}, order.Unknown, fmt.Errorf("unexpected callback payload %q", data)
	}

	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		return kernel.UUID{}, order.Unknown, fmt.Errorf("unexpected callback payload %q", data)
	}

	orderID, err := kernel.UUIDFromString(parts[1])
	if err != nil {
		return kernel.UUID{}, order.Unknown, err
	}

	target, err := order.StatusFromString(parts[2])
	if err != nil {
		return kernel.UUID{}, order.Unknown, err
	}

	return orderID, target, nil
}

// transitionFailureText maps command errors to a short human answer.
func transitionFailureText(err error) string {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return "That status change is not possible anymore."
	case errors.Is(err, order.ErrUnauthorizedTransition),
		errors.Is(err, commands.ErrOrderAccessDenied):
		return "You are not allowed to do that."
	case errors.Is(err, order.ErrPreconditionFailed):
		return "A courier must be assigned first."
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return "Somebody else just changed this order, check its current status."
	case errors.Is(err, errs.ErrObjectNotFound):
		return "Order not found."
	default:
		return "Could not apply that change, try again later."
	}
}
