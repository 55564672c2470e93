// Package dispatch delivers order notifications to the parties the
// NotificationRouter selects. Dispatch is fire-and-forget: the command
// handlers return immediately, delivery runs in background goroutines, and
// failures are logged, never retried and never surfaced to the caller.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const deliveryTimeout = 10 * time.Second

// Dispatcher resolves notification recipients to their Telegram chats and
// fans messages out through the Notifier. It implements the EventDispatcher
// the command handlers call after a successful commit.
type Dispatcher struct {
	notifier ports.Notifier
	accounts ports.AccountRepository
	router   services.NotificationRouter
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewDispatcher creates a dispatcher delivering through notifier, resolving
// recipients via the account repository.
func NewDispatcher(notifier ports.Notifier, accounts ports.AccountRepository, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		accounts: accounts,
		router:   services.NewNotificationRouter(),
		logger:   logger.With("component", "dispatcher"),
	}
}

// DispatchCreated notifies the restaurant's admins about a new order
// awaiting confirmation.
func (d *Dispatcher) DispatchCreated(o *order.Order) {
	text := fmt.Sprintf("New order %s: %d item(s), total %d. Delivery to %s.",
		o.ID(), len(o.Items()), o.Total(), o.Address())
	d.dispatch(o, d.router.RouteCreated(o), text)
}

// DispatchTransition notifies the interested parties about an applied status
// change.
func (d *Dispatcher) DispatchTransition(o *order.Order, edge order.Edge) {
	text := fmt.Sprintf("Order %s is now %s.", o.ID(), edge.To)
	d.dispatch(o, d.router.RouteTransition(o, edge), text)
}

// DispatchCourierAssigned notifies the courier about their new delivery.
func (d *Dispatcher) DispatchCourierAssigned(o *order.Order) {
	text := fmt.Sprintf("New delivery: order %s to %s.", o.ID(), o.Address())
	d.dispatch(o, d.router.RouteCourierAssigned(o), text)
}

// Wait blocks until every in-flight dispatch finished delivering. Used on
// graceful shutdown and by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// dispatch resolves the recipients to accounts and delivers to each linked
// chat concurrently. The order's status is captured before the goroutine
// starts so keyboards reflect the state the event happened in.
func (d *Dispatcher) dispatch(o *order.Order, recipients []services.Recipient, text string) {
	if len(recipients) == 0 {
		return
	}

	orderID := o.ID()
	status := o.Status()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		for _, recipient := range recipients {
			g.Go(func() error {
				d.deliverTo(gctx, recipient, orderID, status, text)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

// deliverTo sends the message to every account behind one recipient. Errors
// are logged and swallowed: a dead chat must not affect the other recipients.
func (d *Dispatcher) deliverTo(
	ctx context.Context,
	recipient services.Recipient,
	orderID kernel.UUID,
	status order.Status,
	text string,
) {
	targets, err := d.resolve(ctx, recipient)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to resolve notification recipient",
			"role", recipient.Role, "recipient_id", recipient.ID, "error", err)
		return
	}

	for _, target := range targets {
		chatID := target.TelegramChatID()
		if chatID == 0 {
			continue
		}

		msg := ports.Message{
			ChatID:  chatID,
			Text:    text,
			Actions: actionsFor(orderID, status, target.Role()),
		}
		if err := d.notifier.Send(ctx, msg); err != nil {
			d.logger.ErrorContext(ctx, "Failed to deliver notification",
				"chat_id", chatID, "order_id", orderID, "error", err)
		}
	}
}

// resolve maps a routing recipient to the accounts to message. A restaurant
// recipient expands to every admin scoped to it; couriers sign in with their
// courier ID as account ID.
func (d *Dispatcher) resolve(ctx context.Context, recipient services.Recipient) ([]*account.Account, error) {
	if recipient.Role == kernel.RoleRestaurantAdmin {
		return d.accounts.GetAdminsByRestaurant(ctx, recipient.ID)
	}

	target, err := d.accounts.Get(ctx, recipient.ID)
	if err != nil {
		return nil, err
	}
	return []*account.Account{target}, nil
}

// actionsFor renders the buttons for the transitions the recipient's role
// may trigger from the order's current status.
func actionsFor(orderID kernel.UUID, status order.Status, role kernel.Role) []ports.Action {
	next := status.NextFor(role)
	actions := make([]ports.Action, 0, len(next))
	for _, target := range next {
		actions = append(actions, ports.Action{
			Label:    actionLabel(target),
			Callback: fmt.Sprintf("order:%s:%s", orderID, target),
		})
	}
	return actions
}

func actionLabel(target order.Status) string {
	switch target {
	case order.Confirmed:
		return "Confirm"
	case order.Preparing:
		return "Start preparing"
	case order.ReadyForPickup:
		return "Ready for pickup"
	case order.PickedUp:
		return "Pick up"
	case order.Delivered:
		return "Delivered"
	case order.Cancelled:
		return "Cancel"
	default:
		return target.String()
	}
}
