package ports

import "context"

// Action is an actionable button attached to a notification: a label shown
// to the recipient and an opaque callback payload returned when pressed.
type Action struct {
	Label    string
	Callback string
}

// Message is a rendered notification ready for delivery to one chat.
type Message struct {
	ChatID  int64
	Text    string
	Actions []Action
}

// Notifier is the outbound notification channel. Delivery is best-effort
// at-most-once: implementations report failure through the error, and the
// dispatcher logs it without retrying.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
